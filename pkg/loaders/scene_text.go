package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

var (
	// ErrMissingCamera is returned when a scene file has no "e" line
	ErrMissingCamera = errors.New("scene has no camera ('e') line")
	// ErrMissingAmbient is returned when a scene file has no "a" line
	ErrMissingAmbient = errors.New("scene has no ambient ('a') line")
)

// Statement is a single numeric line of a scene file
type Statement struct {
	Kind   string     // Line identifier (e, a, o, r, t, c, d, p, i)
	Values [4]float64 // Up to four numeric fields; missing optional fields are zero
	Line   int        // 1-based line number in the source
}

// Vec3 returns the first three values as a vector
func (s Statement) Vec3() core.Vec3 {
	return core.NewVec3(s.Values[0], s.Values[1], s.Values[2])
}

// W returns the fourth value
func (s Statement) W() float64 {
	return s.Values[3]
}

// SceneDescription holds the statements of a scene file grouped by kind, in file order
type SceneDescription struct {
	Eye         Statement
	Ambient     Statement
	Objects     []Statement // o, r and t lines
	Colors      []Statement // c lines, paired with Objects by position
	Lights      []Statement // d lines
	Positions   []Statement // p lines, paired with spot lights (d with w=1) by position
	Intensities []Statement // i lines, paired with Lights by position
	Warnings    []string    // Non-fatal problems found while parsing
}

// statementArity lists the minimum and maximum number of values per line kind
var statementArity = map[string][2]int{
	"e": {3, 4},
	"a": {3, 4},
	"o": {4, 4},
	"r": {4, 4},
	"t": {4, 4},
	"c": {4, 4},
	"d": {4, 4},
	"p": {4, 4},
	"i": {3, 4},
}

// ParseScene parses scene text from an io.Reader.
// Missing camera or ambient lines are fatal; unknown identifiers are recorded as warnings.
func ParseScene(reader io.Reader) (*SceneDescription, error) {
	desc := &SceneDescription{}
	hasEye, hasAmbient := false, false

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		kind := fields[0]
		arity, known := statementArity[kind]
		if !known {
			desc.Warnings = append(desc.Warnings,
				fmt.Sprintf("line %d: unknown identifier %q ignored", lineNumber, kind))
			continue
		}

		stmt, err := parseStatement(kind, fields[1:], arity, lineNumber)
		if err != nil {
			return nil, err
		}

		switch kind {
		case "e":
			if hasEye {
				desc.Warnings = append(desc.Warnings,
					fmt.Sprintf("line %d: duplicate camera line ignored", lineNumber))
				continue
			}
			desc.Eye, hasEye = stmt, true
		case "a":
			if hasAmbient {
				desc.Warnings = append(desc.Warnings,
					fmt.Sprintf("line %d: duplicate ambient line ignored", lineNumber))
				continue
			}
			desc.Ambient, hasAmbient = stmt, true
		case "o", "r", "t":
			desc.Objects = append(desc.Objects, stmt)
		case "c":
			desc.Colors = append(desc.Colors, stmt)
		case "d":
			desc.Lights = append(desc.Lights, stmt)
		case "p":
			desc.Positions = append(desc.Positions, stmt)
		case "i":
			desc.Intensities = append(desc.Intensities, stmt)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading scene: %w", err)
	}

	if !hasEye {
		return nil, ErrMissingCamera
	}
	if !hasAmbient {
		return nil, ErrMissingAmbient
	}

	return desc, nil
}

// LoadScene loads and parses a scene file
func LoadScene(filename string) (*SceneDescription, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	desc, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return desc, nil
}

// parseStatement converts the numeric fields of one line
func parseStatement(kind string, fields []string, arity [2]int, lineNumber int) (Statement, error) {
	if len(fields) < arity[0] || len(fields) > arity[1] {
		return Statement{}, fmt.Errorf("line %d: '%s' expects %d to %d values, got %d",
			lineNumber, kind, arity[0], arity[1], len(fields))
	}

	stmt := Statement{Kind: kind, Line: lineNumber}
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Statement{}, fmt.Errorf("line %d: invalid number %q: %w", lineNumber, field, err)
		}
		stmt.Values[i] = value
	}

	return stmt, nil
}
