package jre

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewRegistration(t *testing.T) {
	mobile, err := kernel.NewMobile("9876543210")
	require.NoError(t, err)

	reg, err := NewRegistration("jre-1", mobile, "op-1", "KA01AB1234")
	require.NoError(t, err)
	assert.Equal(t, "jre-1", reg.ID)
	assert.Equal(t, "+919876543210", reg.PrimaryMobile.E164())
	assert.Equal(t, "op-1", reg.OperatorNumber)
	assert.Equal(t, "KA01AB1234", reg.VehicleNumber)
}

func Test_NewRegistration_Invalid(t *testing.T) {
	mobile, err := kernel.NewMobile("9876543210")
	require.NoError(t, err)

	_, err = NewRegistration("", mobile, "", "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewRegistration("jre-1", kernel.Mobile{}, "", "")
	assert.Error(t, err)
}
