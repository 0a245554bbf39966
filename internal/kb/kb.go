// Package kb renders the loaded knowledge base (the symbolic rule table, the
// fuzzy variables and rules, and the label bands) as a YAML document.
package kb

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/estudia/internal/bands"
	"github.com/abhisek/estudia/internal/expert"
	"github.com/abhisek/estudia/internal/fuzzy"
)

// Document is the serializable view of both engines.
type Document struct {
	Risk   RiskSection   `yaml:"riesgo"`
	Stress StressSection `yaml:"estres"`
}

type RiskSection struct {
	Rules []RiskRule `yaml:"reglas"`
}

type RiskRule struct {
	ID       string `yaml:"id"`
	When     string `yaml:"si"`
	Then     string `yaml:"entonces"`
	Priority int    `yaml:"prioridad"`
}

type StressSection struct {
	Method       string       `yaml:"metodo"`
	NeutralScore float64      `yaml:"valor_neutral"`
	Variables    []Variable   `yaml:"variables"`
	Rules        []string     `yaml:"reglas"`
	Bands        []bands.Band `yaml:"bandas"`
	Top          string       `yaml:"nivel_superior"`
}

type Variable struct {
	Name  string            `yaml:"nombre"`
	Role  string            `yaml:"rol"`
	Min   float64           `yaml:"min"`
	Max   float64           `yaml:"max"`
	Terms map[string]string `yaml:"terminos"`
}

// Build snapshots the given engines.
func Build(risk *expert.Engine, stress *fuzzy.System, labels bands.Scheme) Document {
	var doc Document
	for _, r := range risk.Rules() {
		doc.Risk.Rules = append(doc.Risk.Rules, RiskRule{
			ID:       r.ID,
			When:     r.When,
			Then:     r.Then.String(),
			Priority: r.Priority,
		})
	}

	doc.Stress.Method = string(stress.Method())
	doc.Stress.NeutralScore = stress.NeutralScore()
	vars := append(append([]*fuzzy.Variable{}, stress.Inputs()...), stress.Output())
	for _, v := range vars {
		terms := make(map[string]string, len(v.Terms))
		for _, t := range v.Terms {
			terms[t.Name] = t.MF.String()
		}
		doc.Stress.Variables = append(doc.Stress.Variables, Variable{
			Name:  v.Name,
			Role:  string(v.Role),
			Min:   v.Min,
			Max:   v.Max,
			Terms: terms,
		})
	}
	for _, r := range stress.Rules() {
		doc.Stress.Rules = append(doc.Stress.Rules, r.String())
	}
	doc.Stress.Bands = labels.Bands()
	doc.Stress.Top = labels.Top()
	return doc
}

// Write encodes doc as YAML.
func Write(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode knowledge base: %w", err)
	}
	return enc.Close()
}
