package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/salted/internal/domain/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AccountRenderer renders the ledger state of an address
type AccountRenderer struct {
	out io.Writer
}

// NewAccountRenderer creates a new account renderer
func NewAccountRenderer(out io.Writer) *AccountRenderer {
	return &AccountRenderer{out: out}
}

// accountKind classifies an account for display
func accountKind(a *models.AccountState) string {
	switch {
	case !a.Exists:
		return "unused"
	case a.CodeSize > 0:
		return "contract"
	case a.Nonce > 0:
		return "occupied account"
	default:
		return "funded account"
	}
}

func (r *AccountRenderer) Render(a *models.AccountState) error {
	kind := cases.Title(language.English).String(accountKind(a))
	headerStyle.Fprintf(r.out, "%s %s\n", kind, a.Address)

	fmt.Fprintln(r.out, field("Nonce", fmt.Sprintf("%d", a.Nonce)))
	fmt.Fprintln(r.out, field("Balance", a.Balance+" wei"))
	fmt.Fprintln(r.out, field("Code size", fmt.Sprintf("%d", a.CodeSize)))
	if a.CodeSize > 0 {
		fmt.Fprintln(r.out, field("Code hash", a.CodeHash))
	}
	if a.Code != "" {
		fmt.Fprintln(r.out, field("Code", a.Code))
	}

	if a.Deployment != nil {
		fmt.Fprintln(r.out)
		color.New(color.Bold).Fprintln(r.out, "Deployment")
		NewDeploymentRenderer(r.out).renderBody(a.Deployment)
	}
	return nil
}

var _ Renderer[*models.AccountState] = (*AccountRenderer)(nil)
