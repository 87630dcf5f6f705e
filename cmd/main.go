package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/edp1096/toy-semi/internal/consts"
	"github.com/edp1096/toy-semi/pkg/analysis"
	"github.com/edp1096/toy-semi/pkg/carrier"
	"github.com/edp1096/toy-semi/pkg/deck"
	"github.com/edp1096/toy-semi/pkg/material"
	"github.com/edp1096/toy-semi/pkg/util"
)

type options struct {
	material       string
	eg, nc, nv, tc float64 // NaN keeps the preset value
	temp, nd, na   float64
	kb             float64
	sweep          string // "", "temp" or "dope"
	start, stop    float64
	step           float64 // temperature sweep increment (K)
	points         int     // doping sweep points per decade
	variable       string  // doping sweep variable
}

func main() {
	deckFile := flag.String("f", "", "deck file to run")

	var opt options
	flag.StringVar(&opt.material, "material", "si", "material preset (si, ge, gaas) or custom name")
	flag.Float64Var(&opt.eg, "eg", math.NaN(), "bandgap at 300 K (eV), overrides preset")
	flag.Float64Var(&opt.nc, "nc", math.NaN(), "conduction band density of states at 300 K (cm^-3)")
	flag.Float64Var(&opt.nv, "nv", math.NaN(), "valence band density of states at 300 K (cm^-3)")
	flag.Float64Var(&opt.tc, "tc", math.NaN(), "bandgap temperature coefficient (eV/K)")
	flag.Float64Var(&opt.temp, "temp", consts.REF_TEMP, "temperature (K)")
	flag.Float64Var(&opt.nd, "nd", 0, "donor concentration (cm^-3)")
	flag.Float64Var(&opt.na, "na", 0, "acceptor concentration (cm^-3)")
	flag.Float64Var(&opt.kb, "kb", consts.BOLTZMANN_EV, "Boltzmann constant (eV/K)")
	flag.StringVar(&opt.sweep, "sweep", "", "sweep mode: temp or dope")
	flag.Float64Var(&opt.start, "start", 0, "sweep start (K or cm^-3)")
	flag.Float64Var(&opt.stop, "stop", 0, "sweep stop (K or cm^-3)")
	flag.Float64Var(&opt.step, "step", 0, "temperature sweep increment (K)")
	flag.IntVar(&opt.points, "points", 5, "doping sweep points per decade")
	flag.StringVar(&opt.variable, "var", "nd", "doping sweep variable: nd or na")
	flag.Parse()

	var d *deck.Deck
	var err error

	if *deckFile != "" {
		var data []byte
		data, err = os.ReadFile(*deckFile)
		if err != nil {
			log.Fatalf("reading deck file: %v", err)
		}
		d, err = deck.Parse(string(data))
		if err != nil {
			log.Fatalf("parsing deck: %v", err)
		}
	} else {
		d, err = buildDeck(opt)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	if err = run(d); err != nil {
		log.Fatalf("%v", err)
	}
}

// buildDeck assembles a deck from direct flags: a preset, optionally
// overridden per parameter, or a fully specified custom material, plus
// an optional sweep.
func buildDeck(opt options) (*deck.Deck, error) {
	mat, err := material.ByName(opt.material)
	if err != nil {
		// Not a preset: eg/nc/nv must be given explicitly.
		if math.IsNaN(opt.eg) || math.IsNaN(opt.nc) || math.IsNaN(opt.nv) {
			return nil, fmt.Errorf("custom material %s needs -eg, -nc and -nv", opt.material)
		}
		mat = material.Params{Name: opt.material}
	}
	if !math.IsNaN(opt.eg) {
		mat.Eg300 = opt.eg
	}
	if !math.IsNaN(opt.nc) {
		mat.Nc300 = opt.nc
	}
	if !math.IsNaN(opt.nv) {
		mat.Nv300 = opt.nv
	}
	if !math.IsNaN(opt.tc) {
		mat.TempCoeff = opt.tc
	}

	d := &deck.Deck{
		Title:     fmt.Sprintf("%s operating point", mat.Name),
		Material:  mat,
		Boltzmann: opt.kb,
		Cond:      carrier.Condition{Temp: opt.temp, Donor: opt.nd, Acceptor: opt.na},
		Analysis:  deck.AnalysisOP,
	}

	switch opt.sweep {
	case "":

	case "temp":
		if opt.step <= 0 {
			return nil, fmt.Errorf("temperature sweep needs -step > 0, got %g", opt.step)
		}
		if opt.stop < opt.start {
			return nil, fmt.Errorf("sweep stop %g below start %g", opt.stop, opt.start)
		}
		d.Analysis = deck.AnalysisTempSweep
		d.Title = fmt.Sprintf("%s temperature sweep", mat.Name)
		d.TempParam.Start = opt.start
		d.TempParam.Stop = opt.stop
		d.TempParam.Step = opt.step

	case "dope":
		// Range and points are validated by NewDopingSweep.
		d.Analysis = deck.AnalysisDopingSweep
		d.Title = fmt.Sprintf("%s doping sweep (%s)", mat.Name, opt.variable)
		d.DopeParam.Variable = opt.variable
		d.DopeParam.Start = opt.start
		d.DopeParam.Stop = opt.stop
		d.DopeParam.Points = opt.points

	default:
		return nil, fmt.Errorf("unknown sweep mode: %s", opt.sweep)
	}

	return d, nil
}

func run(d *deck.Deck) error {
	fmt.Printf("%s\n", d.Title)

	switch d.Analysis {
	case deck.AnalysisTempSweep:
		ts := analysis.NewTempSweep(d.TempParam.Start, d.TempParam.Stop, d.TempParam.Step,
			d.Cond.Donor, d.Cond.Acceptor)
		ts.Boltzmann = d.Boltzmann
		if err := ts.Setup(d.Material); err != nil {
			return err
		}
		if err := ts.Execute(); err != nil {
			return err
		}
		printSweep("TEMP", "Temperature Sweep", ts.GetResults())

	case deck.AnalysisDopingSweep:
		ds, err := analysis.NewDopingSweep(d.DopeParam.Variable,
			d.DopeParam.Start, d.DopeParam.Stop, d.DopeParam.Points,
			d.Cond.Temp, d.Cond.Donor, d.Cond.Acceptor)
		if err != nil {
			return err
		}
		ds.Boltzmann = d.Boltzmann
		if err := ds.Setup(d.Material); err != nil {
			return err
		}
		if err := ds.Execute(); err != nil {
			return err
		}
		printSweep("SWEEP", "Doping Sweep ("+d.DopeParam.Variable+")", ds.GetResults())

	default:
		op := analysis.NewOP(d.Cond)
		op.Boltzmann = d.Boltzmann
		if err := op.Setup(d.Material); err != nil {
			return err
		}
		if err := op.Execute(); err != nil {
			return err
		}
		printOperatingPoint(d, op.Result())
	}

	return nil
}

func printOperatingPoint(d *deck.Deck, res carrier.Result) {
	fmt.Println("\nOperating Point Results:")
	fmt.Println("========================")
	fmt.Printf("Material     : %s\n", d.Material.Name)
	fmt.Printf("Temperature  : %s\n", util.FormatTemperature(d.Cond.Temp))
	fmt.Printf("Bandgap Eg(T): %s\n", util.FormatEnergy(res.Eg))
	fmt.Printf("ni           : %s\n", util.FormatConcentration(res.Ni))
	fmt.Printf("n            : %s\n", util.FormatConcentration(res.N))
	fmt.Printf("p            : %s\n", util.FormatConcentration(res.P))
	fmt.Printf("Fermi offset : %s\n", util.FormatEnergy(res.FermiOffset))
	fmt.Printf("Type         : %s\n", res.Type)
}

func printSweep(axis, title string, results map[string][]float64) {
	points := results[axis]

	fmt.Printf("\n%s Results (%d points):\n", title, len(points))
	fmt.Println("----------------------------------------------------------------------------")
	fmt.Printf("%-14s %-16s %-16s %-16s %s\n", axis, "NI", "N", "P", "EF")

	for i := range points {
		fmt.Printf("%-14.6g %-16.4e %-16.4e %-16.4e %s\n",
			points[i], results["NI"][i], results["N"][i], results["P"][i],
			util.FormatEnergy(results["EF"][i]))
	}
}
