package constants_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/agentstation/webicons/pkg/constants"
)

// Example demonstrates using permission constants when writing a metadata file
func Example() {
	dir, err := os.MkdirTemp("", "webicons")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	file := filepath.Join(dir, "metadata.json")
	if err := os.WriteFile(file, []byte("{}"), constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created file with %o permissions\n", constants.FilePermissions)
	// Output:
	// Created file with 644 permissions
}

// Example_timeouts demonstrates bounding a metadata load
func Example_timeouts() {
	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultLoadTimeout)
	defer cancel()

	_, hasDeadline := ctx.Deadline()
	fmt.Println("load deadline set:", hasDeadline)

	server := &http.Server{
		ReadTimeout:  constants.DefaultReadTimeout,
		WriteTimeout: constants.DefaultWriteTimeout,
	}
	fmt.Println("read timeout:", server.ReadTimeout)
	// Output:
	// load deadline set: true
	// read timeout: 10s
}

// Example_paths shows the default resource locations
func Example_paths() {
	fmt.Println(constants.DefaultMetadataPath)
	fmt.Println(constants.DefaultFaviconPath)
	// Output:
	// ./config/metadata.json
	// favicons/favicon.ico
}
