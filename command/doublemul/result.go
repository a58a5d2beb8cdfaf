package doublemul

import (
	"bytes"
	"fmt"

	"github.com/noot/go-ge25519/command/helper"
)

type DoubleMulResult struct {
	A      string `json:"a"`
	PointA string `json:"A"`
	B      string `json:"b"`
	Point  string `json:"point"`
}

func (r *DoubleMulResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[DOUBLE SCALAR MULTIPLICATION a*A + b*B]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("a|%s", r.A),
		fmt.Sprintf("A|%s", r.PointA),
		fmt.Sprintf("b|%s", r.B),
		fmt.Sprintf("Result|%s", r.Point),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
