package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/bars"
	"github.com/midbel/bars/decode"
	"github.com/midbel/slices"
	"golang.org/x/sync/errgroup"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no configuration file given")
		os.Exit(2)
	}
	var grp errgroup.Group
	for _, file := range flag.Args() {
		file := file
		grp.Go(func() error {
			return render(file)
		})
	}
	if err := grp.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func render(file string) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()

	cfg, err := decode.NewDecoder(r).Decode()
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	var (
		ch   = cfg.Chart()
		plot = ch.PlotArea()
		set  []bars.Data
	)
	for _, s := range cfg.Series {
		ser, err := s.Build(plot)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		cats, values, err := readData(datPath(file, s.Data))
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		var (
			cs bars.Scaler[string]
			vs bars.Scaler[float64]
		)
		if ser.Layout == bars.LayoutVertical {
			cs = bars.StringScaler(cats, bars.NewRange(0, plot.Height))
			vs = bars.NumberScaler(0, maxValue(values), bars.NewRange(0, plot.Width))
		} else {
			cs = bars.StringScaler(cats, bars.NewRange(0, plot.Width))
			vs = bars.NumberScaler(maxValue(values), 0, bars.NewRange(0, plot.Height))
		}
		ser.Items = bars.ScaleItems(ser.Layout, cats, values, cs, vs, plot, s.Width)
		set = append(set, ser)
	}
	out := cfg.Path
	if out == "" {
		out = strings.TrimSuffix(file, filepath.Ext(file)) + ".svg"
	}
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()
	ch.Render(w, set...)
	return nil
}

func readData(file string) ([]string, []float64, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	var (
		rs     = csv.NewReader(r)
		cats   []string
		values []float64
	)
	rs.FieldsPerRecord = -1
	for i := 0; ; i++ {
		row, err := rs.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if len(row) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, nil, err
		}
		cats = append(cats, slices.Fst(row))
		values = append(values, v)
	}
	return cats, values, nil
}

func datPath(cfg, dat string) string {
	if dat == "" || filepath.IsAbs(dat) {
		return dat
	}
	return filepath.Join(filepath.Dir(cfg), dat)
}

func maxValue(values []float64) float64 {
	if len(values) == 0 {
		return 1
	}
	max := slices.Fst(values)
	for _, v := range slices.Rest(values) {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		max = 1
	}
	return max
}
