package decode

import (
	"bytes"
	"fmt"

	"github.com/noot/go-ge25519/command/helper"
)

type DecodeResult struct {
	Input    string `json:"input"`
	Negated  bool   `json:"negated"`
	X        string `json:"x"`
	Y        string `json:"y"`
	Encoding string `json:"encoding"`
}

func (r *DecodeResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[DECODED POINT]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Input|%s", r.Input),
		fmt.Sprintf("Negated|%t", r.Negated),
		fmt.Sprintf("Affine x|%s", r.X),
		fmt.Sprintf("Affine y|%s", r.Y),
		fmt.Sprintf("Encoding|%s", r.Encoding),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
