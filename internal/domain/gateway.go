package domain

import (
	"fmt"
	"strings"
)

// DeclarationPath is the well-known path of the declaration document on a
// gateway origin.
const DeclarationPath = "/verify.json"

// NormalizeIdentifier canonicalizes a gateway identifier (a hosted-pages
// account name). Identifiers are case-insensitive; the lowercase form is the
// canonical counter and ledger key.
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// GatewayURL returns the origin serving the identifier's pages site,
// e.g. "https://alice.github.io". This exact string appears in the approval
// message, so the format must remain stable.
func GatewayURL(identifier string) string {
	return fmt.Sprintf("https://%s.github.io", identifier)
}

// GatewayHost returns the bare gateway host reported in approval results,
// e.g. "alice.github.io".
func GatewayHost(identifier string) string {
	return identifier + ".github.io"
}

// GatewayDeclaration is the remote document asserting a signer address for an
// identifier, served at GatewayURL(identifier) + DeclarationPath. The system
// only reads an in-flight copy during a single verification; the remote party
// owns the document.
type GatewayDeclaration struct {
	Signer string `json:"signer"`
}
