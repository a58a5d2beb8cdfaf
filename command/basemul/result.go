package basemul

import (
	"bytes"
	"fmt"

	"github.com/noot/go-ge25519/command/helper"
)

type BaseMulResult struct {
	Scalar string `json:"scalar"`
	Point  string `json:"point"`
}

func (r *BaseMulResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[BASE MULTIPLICATION]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Scalar|%s", r.Scalar),
		fmt.Sprintf("Point|%s", r.Point),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
