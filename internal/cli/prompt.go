package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads answers to interactive prompts, one line per answer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Line prints prompt and returns the next input line without its line ending.
// Returns io.EOF once input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int prompts until the answer parses as an integer.
// field names the value in the retry message.
func (p *Prompter) Int(prompt, field string) (int, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := ParseID(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "Invalid input for %s. Please enter a number.\n", field)
	}
}

// Float prompts until the answer parses as a number.
func (p *Prompter) Float(prompt, field string) (float64, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		f, err := ParseSalary(line)
		if err == nil {
			return f, nil
		}
		fmt.Fprintf(p.out, "Invalid input for %s. Please enter a number.\n", field)
	}
}

// ParseID parses an employee id.
func ParseID(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ValidationError{Field: "employee ID", Message: fmt.Sprintf("%q is not an integer", strings.TrimSpace(s))}
	}
	return n, nil
}

// ParseSalary parses a salary. A leading "$" and thousands separators are
// accepted ("$1,250.50").
func ParseSalary(s string) (float64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil || clean == "" {
		return 0, &ValidationError{Field: "salary", Message: fmt.Sprintf("%q is not a number", strings.TrimSpace(s))}
	}
	return f, nil
}
