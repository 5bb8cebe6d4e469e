package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/salted/internal/domain/models"
)

var (
	labelStyle   = color.New(color.Faint)
	addressStyle = color.New(color.FgGreen, color.Bold)
	headerStyle  = color.New(color.FgCyan, color.Bold)
)

// PredictionRenderer renders where a deployment lands
type PredictionRenderer struct {
	out io.Writer
}

// NewPredictionRenderer creates a new prediction renderer
func NewPredictionRenderer(out io.Writer) *PredictionRenderer {
	return &PredictionRenderer{out: out}
}

func (r *PredictionRenderer) Render(p *models.Prediction) error {
	headerStyle.Fprintln(r.out, "Predicted deployment")
	fmt.Fprintln(r.out, field("Address", addressStyle.Sprint(p.Address)))
	fmt.Fprintln(r.out, field("Relay", p.Relay))
	fmt.Fprintln(r.out, field("Factory", p.Factory))
	fmt.Fprintln(r.out, field("Caller", p.Caller))
	fmt.Fprintln(r.out, field("Salt", p.Salt))
	fmt.Fprintln(r.out, field("Namespaced salt", p.NamespacedSalt))
	return nil
}

var _ Renderer[*models.Prediction] = (*PredictionRenderer)(nil)
