package deck

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/toy-semi/internal/consts"
	"github.com/edp1096/toy-semi/pkg/carrier"
	"github.com/edp1096/toy-semi/pkg/material"
)

type AnalysisType int

const (
	AnalysisOP AnalysisType = iota
	AnalysisTempSweep
	AnalysisDopingSweep
)

type Deck struct {
	Title     string             // Deck title
	Material  material.Params    // Material under analysis
	Boltzmann float64            // Boltzmann constant (eV/K)
	Cond      carrier.Condition  // Operating point
	Analysis  AnalysisType       // Analysis type
	TempParam struct {
		Start float64 // start temperature (K)
		Stop  float64 // stop temperature (K)
		Step  float64 // increment (K)
	}
	DopeParam struct {
		Variable string  // "nd" or "na"
		Start    float64 // start concentration (cm^-3)
		Stop     float64 // stop concentration (cm^-3)
		Points   int     // points per decade
	}

	hasMaterial bool
}

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

func ParseValue(val string) (float64, error) {
	re := regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGKkmunpf])?$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(val))

	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	if len(matches) > 2 && matches[2] != "" {
		if multiplier, ok := unitMap[matches[2]]; ok {
			num *= multiplier
		}
	}

	return num, nil
}

func Parse(input string) (*Deck, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	deck := &Deck{
		Boltzmann: consts.BOLTZMANN_EV,
		Analysis:  AnalysisOP,
	}

	// Title or comment
	if scanner.Scan() {
		deck.Title = strings.TrimPrefix(scanner.Text(), "*")
		deck.Title = strings.TrimSpace(deck.Title)
	}

	var currentLine string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			if currentLine != "" {
				if err := parseLine(deck, currentLine); err != nil {
					return nil, err
				}
				currentLine = ""
			}
			continue
		}

		// Strip in-line comments. A full comment line ends any card in
		// progress, so a later continuation cannot join across it.
		if idx := strings.Index(line, "*"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
			if len(line) == 0 {
				if currentLine != "" {
					if err := parseLine(deck, currentLine); err != nil {
						return nil, err
					}
					currentLine = ""
				}
				continue
			}
		}

		// Line continuation
		if strings.HasPrefix(line, "+") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "+"))
			if currentLine != "" {
				currentLine += " " + line
			}
			continue
		}

		if currentLine != "" {
			if err := parseLine(deck, currentLine); err != nil {
				return nil, err
			}
		}
		currentLine = line
	}

	if currentLine != "" {
		if err := parseLine(deck, currentLine); err != nil {
			return nil, err
		}
	}

	if !deck.hasMaterial {
		return nil, fmt.Errorf("deck has no .material card")
	}

	return deck, nil
}

func parseLine(deck *Deck, line string) error {
	line = regexp.MustCompile(`\s+`).ReplaceAllString(line, " ")

	if !strings.HasPrefix(line, ".") {
		return fmt.Errorf("unknown card: %s", line)
	}

	fields := strings.Fields(line)

	switch strings.ToLower(fields[0]) {
	case ".material":
		return parseMaterial(deck, fields[1:])

	case ".options":
		return parseOptions(deck, fields[1:])

	case ".cond":
		return parseCondition(deck, fields[1:])

	case ".op":
		deck.Analysis = AnalysisOP

	case ".temp":
		deck.Analysis = AnalysisTempSweep
		if len(fields) < 4 {
			return fmt.Errorf("insufficient temp sweep parameters, need start, stop and step")
		}
		var err error
		if deck.TempParam.Start, err = ParseValue(fields[1]); err != nil {
			return fmt.Errorf("invalid start temperature: %v", err)
		}
		if deck.TempParam.Stop, err = ParseValue(fields[2]); err != nil {
			return fmt.Errorf("invalid stop temperature: %v", err)
		}
		if deck.TempParam.Step, err = ParseValue(fields[3]); err != nil {
			return fmt.Errorf("invalid temperature step: %v", err)
		}
		if deck.TempParam.Step <= 0 {
			return fmt.Errorf("temperature step must be positive, got %g", deck.TempParam.Step)
		}
		if deck.TempParam.Stop < deck.TempParam.Start {
			return fmt.Errorf("temperature sweep stop %g below start %g",
				deck.TempParam.Stop, deck.TempParam.Start)
		}

	case ".dope":
		deck.Analysis = AnalysisDopingSweep
		if len(fields) < 5 {
			return fmt.Errorf("insufficient doping sweep parameters, need variable, start, stop and points")
		}
		deck.DopeParam.Variable = strings.ToLower(fields[1])
		if deck.DopeParam.Variable != "nd" && deck.DopeParam.Variable != "na" {
			return fmt.Errorf("invalid sweep variable: %s", fields[1])
		}
		var err error
		if deck.DopeParam.Start, err = ParseValue(fields[2]); err != nil {
			return fmt.Errorf("invalid start concentration: %v", err)
		}
		if deck.DopeParam.Stop, err = ParseValue(fields[3]); err != nil {
			return fmt.Errorf("invalid stop concentration: %v", err)
		}
		if deck.DopeParam.Points, err = strconv.Atoi(fields[4]); err != nil {
			return fmt.Errorf("invalid points number: %v", err)
		}

	default:
		return fmt.Errorf("unsupported card: %s", fields[0])
	}

	return nil
}

// parseMaterial handles ".material si" or ".material <name> eg=... nc=... nv=... tc=...".
// A preset name may be followed by key=value overrides.
func parseMaterial(deck *Deck, fields []string) error {
	if len(fields) < 1 {
		return fmt.Errorf("material card needs a name")
	}

	name := fields[0]
	mat, err := material.ByName(name)
	if err != nil {
		// Not a preset: all four parameters must be supplied.
		mat = material.Params{Name: name}
	}

	seen := make(map[string]bool)
	for _, field := range fields[1:] {
		key, val, err := parseKeyValue(field)
		if err != nil {
			return fmt.Errorf("material %s: %v", name, err)
		}
		switch key {
		case "eg":
			mat.Eg300 = val
		case "nc":
			mat.Nc300 = val
		case "nv":
			mat.Nv300 = val
		case "tc":
			mat.TempCoeff = val
		default:
			return fmt.Errorf("material %s: unknown parameter %s", name, key)
		}
		seen[key] = true
	}

	if err != nil { // custom material, check completeness
		for _, key := range []string{"eg", "nc", "nv"} {
			if !seen[key] {
				return fmt.Errorf("material %s: missing parameter %s", name, key)
			}
		}
	}

	deck.Material = mat
	deck.hasMaterial = true
	return nil
}

func parseOptions(deck *Deck, fields []string) error {
	for _, field := range fields {
		key, val, err := parseKeyValue(field)
		if err != nil {
			return fmt.Errorf("options: %v", err)
		}
		switch key {
		case "kb":
			deck.Boltzmann = val
		default:
			return fmt.Errorf("options: unknown option %s", key)
		}
	}
	return nil
}

func parseCondition(deck *Deck, fields []string) error {
	for _, field := range fields {
		key, val, err := parseKeyValue(field)
		if err != nil {
			return fmt.Errorf("cond: %v", err)
		}
		switch key {
		case "temp":
			deck.Cond.Temp = val
		case "nd":
			deck.Cond.Donor = val
		case "na":
			deck.Cond.Acceptor = val
		default:
			return fmt.Errorf("cond: unknown parameter %s", key)
		}
	}
	return nil
}

func parseKeyValue(field string) (string, float64, error) {
	parts := strings.SplitN(field, "=", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("expected key=value, got %s", field)
	}

	val, err := ParseValue(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("invalid value for %s: %v", parts[0], err)
	}

	return strings.ToLower(parts[0]), val, nil
}
