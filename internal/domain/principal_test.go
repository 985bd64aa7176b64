package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalCanAccess(t *testing.T) {
	tests := []struct {
		name  string
		p     Principal
		owner uint
		want  bool
	}{
		{"owner", Principal{ID: 7, Role: RoleCustomer}, 7, true},
		{"other customer", Principal{ID: 8, Role: RoleCustomer}, 7, false},
		{"admin", Principal{ID: 1, Role: RoleAdmin}, 7, true},
		{"anonymous", Principal{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.CanAccess(tt.owner))
		})
	}
}

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{
		"":         RoleCustomer,
		"customer": RoleCustomer,
		"cliente":  RoleCustomer,
		" Admin ":  RoleAdmin,
	} {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRole("root")
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))
}

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, Page{Offset: 0, Limit: DefaultPageSize}, Page{Offset: -3}.Normalize())
	assert.Equal(t, Page{Offset: 5, Limit: DefaultPageSize}, Page{Offset: 5, Limit: 1000}.Normalize())
	assert.Equal(t, Page{Offset: 5, Limit: 10}, Page{Offset: 5, Limit: 10}.Normalize())
}
