package main

import (
	"fmt"
	"strings"
)

type versionCmd struct{ r *root }

func (v *versionCmd) Run() error {
	parts := []string{fmt.Sprintf("%s version %s", v.r.program, version)}
	if strings.TrimSpace(commit) != "" {
		parts = append(parts, fmt.Sprintf("commit %s", strings.TrimSpace(commit)))
	}
	if strings.TrimSpace(date) != "" {
		parts = append(parts, strings.TrimSpace(date))
	}
	fmt.Println(strings.Join(parts, " - "))
	return nil
}
