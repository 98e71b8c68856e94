package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/inventory-pro/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	tok, exp, err := pkgjwt.Generate("secret", "admin", pkgjwt.RoleOperator, "inventory-pro", 30)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	claims, err := pkgjwt.Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, pkgjwt.RoleOperator, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, _, err := pkgjwt.Generate("secret", "admin", pkgjwt.RoleOperator, "inventory-pro", 30)
	require.NoError(t, err)
	_, err = pkgjwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, _, err := pkgjwt.Generate("secret", "admin", pkgjwt.RoleOperator, "inventory-pro", -1)
	require.NoError(t, err)
	_, err = pkgjwt.Parse("secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, _, err := pkgjwt.Generate("", "admin", pkgjwt.RoleOperator, "inventory-pro", 30)
	assert.Error(t, err)
}
