package domain_test

import (
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetSpec(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.TargetSpec
	}{
		{raw: "//app:server", want: domain.TargetSpec{BasePath: "app", ShortName: "server"}},
		{raw: "//app/cmd", want: domain.TargetSpec{BasePath: "app/cmd", ShortName: "cmd"}},
		{raw: "lib//log:log", want: domain.TargetSpec{CellName: "lib", BasePath: "log", ShortName: "log"}},
		{raw: "@lib//log", want: domain.TargetSpec{CellName: "lib", BasePath: "log", ShortName: "log"}},
		{raw: "  //x:y  ", want: domain.TargetSpec{BasePath: "x", ShortName: "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParseTargetSpec(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTargetSpec_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", ":server", "bad repo//app:x"} {
		t.Run(raw, func(t *testing.T) {
			_, err := domain.ParseTargetSpec(raw)
			assert.ErrorIs(t, err, domain.ErrInvalidTarget)
		})
	}
}

func TestBuildTarget_FullyQualifiedName(t *testing.T) {
	target := domain.BuildTarget{CellPath: "/src/lib", CellName: "lib", BasePath: "log", ShortName: "log"}
	assert.Equal(t, "lib//log:log", target.FullyQualifiedName())
	assert.Equal(t, "lib//log:log", target.String())

	spec := domain.TargetSpec{BasePath: "app", ShortName: "server"}
	assert.Equal(t, "//app:server", spec.String())
}
