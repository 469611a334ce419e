package metadata_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/webicons/pkg/errors"
	"github.com/agentstation/webicons/pkg/metadata"
)

func TestParseFamily(t *testing.T) {
	tests := []struct {
		input   string
		want    metadata.Family
		wantErr bool
	}{
		{"emojis", metadata.Emojis, false},
		{"icons", metadata.Icons, false},
		{"stickers", "", true},
		{"Emojis", "", true},
		{"emoji", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := metadata.ParseFamily(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrUnknownFamily)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestFamilyText(t *testing.T) {
	type payload struct {
		Family metadata.Family `json:"family"`
	}

	data, err := json.Marshal(payload{Family: metadata.Icons})
	require.NoError(t, err)
	assert.JSONEq(t, `{"family":"icons"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"family":"emojis"}`), &p))
	assert.Equal(t, metadata.Emojis, p.Family)

	err = json.Unmarshal([]byte(`{"family":"stickers"}`), &p)
	assert.ErrorIs(t, err, errors.ErrUnknownFamily)
}
