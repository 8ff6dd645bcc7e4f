package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormValidator_RoleTagRegistered(t *testing.T) {
	v, err := newFormValidator()
	require.NoError(t, err)

	type form struct {
		Role string `json:"role" validate:"role"`
	}
	assert.NoError(t, v.Struct(form{Role: ""}))
	assert.NoError(t, v.Struct(form{Role: "Bowler"}))
	assert.Error(t, v.Struct(form{Role: "Captain"}))
}

func TestFormValidator_SharedInstance(t *testing.T) {
	assert.NotPanics(t, func() { formValidator() })
	assert.Same(t, formValidator(), formValidator())
}
