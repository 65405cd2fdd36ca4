package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/builddeps/internal/core/domain"
)

func TestBuildArgs_Tokens(t *testing.T) {
	tests := []struct {
		name string
		args domain.BuildArgs
		want []string
	}{
		{
			name: "empty",
			args: domain.BuildArgs{},
			want: []string{},
		},
		{
			name: "release with target dir",
			args: domain.BuildArgs{
				Bools:  map[string]bool{"release": true},
				Values: map[string]string{"target-dir": "out"},
			},
			want: []string{"--release", "--target-dir", "out"},
		},
		{
			name: "declaration order regardless of map contents",
			args: domain.BuildArgs{
				Bools: map[string]bool{"frozen": true, "release": true},
				Values: map[string]string{
					"target":        "x86_64-unknown-linux-gnu",
					"lib":           "core",
					"bin":           "app",
					"target-dir":    "out",
					"manifest-path": "sub/Cargo.toml",
				},
			},
			want: []string{
				"--release", "--frozen",
				"--manifest-path", "sub/Cargo.toml",
				"--target-dir", "out",
				"--bin", "app",
				"--lib", "core",
				"--target", "x86_64-unknown-linux-gnu",
			},
		},
		{
			name: "false booleans are not forwarded",
			args: domain.BuildArgs{
				Bools: map[string]bool{"release": false, "frozen": true},
			},
			want: []string{"--frozen"},
		},
		{
			name: "empty value is still forwarded",
			args: domain.BuildArgs{
				Values: map[string]string{"bin": ""},
			},
			want: []string{"--bin", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.args.Tokens())
		})
	}
}

func TestNewBuildInvocation(t *testing.T) {
	args := domain.BuildArgs{
		Bools:  map[string]bool{"release": true},
		Values: map[string]string{"target-dir": "out"},
	}
	env := []string{"HOME=/home/test"}

	inv := domain.NewBuildInvocation("cargo", domain.Dependency{Name: "bar", Version: "1.0.0"}, args, env)

	assert.Equal(t, "cargo", inv.Program)
	assert.Equal(t, []string{"build", "--package", "bar:1.0.0", "--release", "--target-dir", "out"}, inv.Args)
	assert.Equal(t, env, inv.Env)
}
