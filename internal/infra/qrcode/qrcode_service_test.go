package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateInviteQR("https://shop.example.com/auth/signup?seller=5")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should be a PNG image")
}

func TestQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateInviteQR("https://shop.example.com/auth/signup?seller=9")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
