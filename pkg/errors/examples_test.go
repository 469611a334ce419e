package errors_test

import (
	"fmt"

	"github.com/agentstation/webicons/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := errors.NewNotFoundError("shortcode", "grinnin")

	if errors.IsNotFound(err) {
		fmt.Println("Resource not found")
	}

	// Output: Resource not found
}

// Example_kind shows how a host service can branch on the failure taxonomy.
func Example_kind() {
	err := errors.NewScopedNotFoundError("vendor", "Twemoji", "emojis")

	fmt.Println(errors.Kind(err))
	fmt.Println(err)

	// Output:
	// UnknownVendor
	// vendor "Twemoji" not found in emojis
}
