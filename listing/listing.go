package listing

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"subc/symtab"
)

// Source writes a listing of the source text with line numbers.
func Source(w io.Writer, src []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(src))

	for line := 1; scanner.Scan(); line++ {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", line, strings.TrimRight(scanner.Text(), "\r")); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// CrossReference writes a table of the symbols declared by a program: the
// global scope first and then the scope of each declared routine in name
// order.
func CrossReference(w io.Writer, program *symtab.Symbol) error {
	if err := writeScope(w, "Program "+program.Name, program.RoutineScope); err != nil {
		return err
	}

	for _, sym := range program.RoutineScope.SortedEntries() {
		if sym.IsRoutine() && sym.RoutineCode == symtab.RoutineDeclared && sym.RoutineScope != nil {
			if err := writeScope(w, "Routine "+sym.Name, sym.RoutineScope); err != nil {
				return err
			}
		}
	}

	return nil
}

// crossReferenceHeader is the header row of every scope table.
var crossReferenceHeader = []string{"Name", "Lines", "Kind", "Type", "Level", "Slot"}

// writeScope writes the table of the entries of a single scope.
func writeScope(w io.Writer, title string, scope *symtab.Scope) error {
	data := pterm.TableData{crossReferenceHeader}

	for _, sym := range scope.SortedEntries() {
		data = append(data, []string{
			sym.Name,
			formatLines(sym.LineNumbers),
			sym.Kind.String(),
			formatType(sym),
			strconv.Itoa(scope.NestingLevel),
			formatSlot(sym),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "\n%s\n%s\n", title, table)
	return err
}

func formatLines(lines []int) string {
	strs := make([]string, len(lines))
	for i, line := range lines {
		strs[i] = strconv.Itoa(line)
	}

	return strings.Join(strs, ", ")
}

func formatType(sym *symtab.Symbol) string {
	if sym.Type == nil {
		return ""
	}

	return sym.Type.String()
}

func formatSlot(sym *symtab.Symbol) string {
	if sym.HasSlot() {
		return strconv.Itoa(sym.Slot)
	}

	return "-"
}
