package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// GenerateRegistrationNumber builds the final vehicle registration number
// assigned at approval, e.g. "MH01-4F6A2B9C". The office code prefixes a
// random suffix so the number stays unique across offices.
func GenerateRegistrationNumber(officeCode string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("%s-%s", strings.ToUpper(officeCode), suffix)
}

// GenerateDlNumber builds a unique driving license number, e.g. "DL-1A2B3C4D5E".
func GenerateDlNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	return "DL-" + suffix
}

// GenerateTransactionID builds a reference for the legacy direct payment path.
func GenerateTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]
}
