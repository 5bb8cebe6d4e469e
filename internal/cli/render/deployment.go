package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/salted/internal/domain/models"
)

// DeploymentRenderer renders detailed information about a single deployment
type DeploymentRenderer struct {
	out io.Writer
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer) *DeploymentRenderer {
	return &DeploymentRenderer{out: out}
}

// Render renders detailed deployment information
func (r *DeploymentRenderer) Render(d *models.Deployment) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %s", d.DisplayName())))
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	r.renderBody(d)
	return nil
}

func (r *DeploymentRenderer) renderBody(d *models.Deployment) {
	fmt.Fprintln(r.out, field("Address", addressStyle.Sprint(d.Address)))
	if d.Label != "" {
		fmt.Fprintln(r.out, field("Label", color.New(color.FgMagenta).Sprint(d.Label)))
	}
	fmt.Fprintln(r.out, field("Relay", d.Relay))
	fmt.Fprintln(r.out, field("Factory", d.Factory))
	fmt.Fprintln(r.out, field("Caller", d.Caller))
	fmt.Fprintln(r.out, field("Salt", d.Salt))
	fmt.Fprintln(r.out, field("Init code hash", d.InitCodeHash))
	fmt.Fprintln(r.out, field("Code", fmt.Sprintf("%d bytes (%s)", d.CodeSize, d.CodeHash)))
	if d.Value != "" && d.Value != "0" {
		fmt.Fprintln(r.out, field("Value", d.Value+" wei"))
	}
	fmt.Fprintln(r.out, field("Gas used", fmt.Sprintf("%d", d.GasUsed)))
	fmt.Fprintln(r.out, field("Created", timestampStyle.Sprint(d.CreatedAt.Format("2006-01-02 15:04:05"))))
}

var _ Renderer[*models.Deployment] = (*DeploymentRenderer)(nil)
