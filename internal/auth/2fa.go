package auth

import (
	"log"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

type Authenticator struct{}

// GenerateSecret Use SHA1 to google authenticator compatibility
func (g *Authenticator) GenerateSecret(userID string) (string, string, error) {
	secret, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "FinTrack",
		AccountName: userID,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		log.Println("Error during totp secret generation: ", err)
		return "", "", ErrInternalError
	}

	secretKey := secret.Secret()
	otpURI := secret.URL()
	return otpURI, secretKey, nil
}

func (g *Authenticator) VerifyCode(secret, code string) bool {
	return totp.Validate(code, secret)
}
