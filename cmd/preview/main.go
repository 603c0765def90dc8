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

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/midbel/bars/decode"
)

func main() {
	out := flag.String("o", "preview.html", "output file")
	flag.Parse()
	if err := preview(flag.Arg(0), *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func preview(file, out string) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()

	cfg, err := decode.NewDecoder(r).Decode()
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: cfg.Title,
	}))
	for i, s := range cfg.Series {
		cats, values, err := readData(datPath(file, s.Data))
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if i == 0 {
			bar.SetXAxis(cats)
		}
		items := make([]opts.BarData, 0, len(values))
		for _, v := range values {
			items = append(items, opts.BarData{Value: v})
		}
		bar.AddSeries(s.Name, items)
	}
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()
	return bar.Render(w)
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
		cats = append(cats, row[0])
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
