package order

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Activation is one fabricated eSIM provisioning record. Every product in
// this storefront is an eSIM, so each purchased unit gets one.
type Activation struct {
	SMDPAddress    string `json:"smdpAddress"`
	ActivationCode string `json:"activationCode"`
	LPAString      string `json:"lpaString"`
	ICCID          string `json:"iccid"`
}

const activationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var smdpServers = []string{
	"dylan-globalcom",
	"esimgo-bacano.com",
}

// NewActivation fabricates a single activation set: SM-DP+ server, a
// dash-grouped 32-character activation code, the LPA string combining the
// two, and a 19-or-20 digit ICCID with the standard "89" prefix.
func NewActivation() Activation {
	smdp := smdpServers[rand.IntN(len(smdpServers))]
	code := randomActivationCode()
	return Activation{
		SMDPAddress:    smdp,
		ActivationCode: code,
		LPAString:      fmt.Sprintf("LPA:1$%s$%s", smdp, code),
		ICCID:          randomICCID(),
	}
}

// GenerateActivations returns one activation per purchased unit.
func GenerateActivations(quantity int) []Activation {
	if quantity < 1 {
		quantity = 1
	}
	activations := make([]Activation, 0, quantity)
	for i := 0; i < quantity; i++ {
		activations = append(activations, NewActivation())
	}
	return activations
}

func randomActivationCode() string {
	var b strings.Builder
	for i := 0; i < 32; i++ {
		b.WriteByte(activationCodeAlphabet[rand.IntN(len(activationCodeAlphabet))])
		if (i+1)%4 == 0 && i != 31 {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func randomICCID() string {
	length := 19
	if rand.IntN(2) == 1 {
		length = 20
	}

	var b strings.Builder
	b.WriteString("89")
	for i := 2; i < length; i++ {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}
