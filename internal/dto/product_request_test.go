package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"handmade", "gift", "blue"}, SplitTags("handmade, gift ,blue"))
	assert.Equal(t, []string{"solo"}, SplitTags(" solo ,, "))
	assert.Equal(t, []string{}, SplitTags(""))
}

func TestSellerProfileRequestNormalize(t *testing.T) {
	req := SellerProfileRequest{
		FullName:    "  Jane ",
		BusinessPAN: " abcde1234f",
		GSTIN:       "22abcde1234f1z5",
		IFSCCode:    "hdfc0001234 ",
	}
	req.Normalize()

	assert.Equal(t, "Jane", req.FullName)
	assert.Equal(t, "ABCDE1234F", req.BusinessPAN)
	assert.Equal(t, "22ABCDE1234F1Z5", req.GSTIN)
	assert.Equal(t, "HDFC0001234", req.IFSCCode)
}

func TestReturnIsSameAsPickup(t *testing.T) {
	assert.True(t, (&SellerProfileRequest{}).ReturnIsSameAsPickup())
	assert.True(t, (&SellerProfileRequest{ReturnAddressSame: "true"}).ReturnIsSameAsPickup())
	assert.False(t, (&SellerProfileRequest{ReturnAddressSame: "false"}).ReturnIsSameAsPickup())
}
