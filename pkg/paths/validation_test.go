package paths

import (
	"strings"
	"testing"

	"github.com/arthur-debert/devmk/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "etc/foo.xml", false},
		{"empty", "", true},
		{"null_byte", "etc/\x00foo", true},
		{"too_long", strings.Repeat("a", maxPathLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestValidatePartition(t *testing.T) {
	for _, name := range []string{"system", "vendor", "system_ext", "odm_dlkm", "vendor2"} {
		assert.NoError(t, ValidatePartition(name), name)
	}

	for _, name := range []string{"", "Vendor", "vendor/etc", "odm-dlkm", "product "} {
		err := ValidatePartition(name)
		require.Error(t, err, name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	}
}

func TestValidatePartitionPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "nested", path: "lib64/egl/libfoo.so"},
		{name: "dot_dot_inside", path: "lib/../lib64/libfoo.so"},
		{name: "absolute", path: "/vendor/lib/libfoo.so", wantErr: "must be relative"},
		{name: "escapes", path: "lib/../../system/foo", wantErr: "escapes its partition"},
		{name: "leading_parent", path: "../foo", wantErr: "escapes its partition"},
		{name: "zero_width_space", path: "etc/fo\u200bo", wantErr: "suspicious Unicode"},
		{name: "empty", path: "", wantErr: "cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePartitionPath(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
