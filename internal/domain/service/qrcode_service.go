package service

// QRCodeService renders payloads as QR code images.
type QRCodeService interface {
	// GenerateInviteQR renders the customer invite link of a seller as a PNG.
	GenerateInviteQR(inviteLink string) ([]byte, error)
}
