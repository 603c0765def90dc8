package decode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/midbel/bars"
)

// Config is a decoded .series file: one chart section, any number of
// serie sections and an optional render target.
type Config struct {
	Path   string
	Title  string
	Kind   string
	Width  float64
	Height float64
	Pad    bars.Padding
	Legend string
	Series []Serie
}

func Default() Config {
	return Config{
		Kind:   "bar",
		Width:  800,
		Height: 600,
	}
}

// Chart builds the hosting chart from the decoded section.
func (c Config) Chart() bars.Chart {
	ch := bars.Chart{
		Title:   c.Title,
		Kind:    bars.ChartKind(c.Kind),
		Width:   c.Width,
		Height:  c.Height,
		Padding: c.Pad,
	}
	switch c.Legend {
	case "top":
		ch.Legend.Orient = bars.OrientTop
	case "right":
		ch.Legend.Orient = bars.OrientRight
	case "bottom":
		ch.Legend.Orient = bars.OrientBottom
	case "left":
		ch.Legend.Orient = bars.OrientLeft
	}
	return ch
}

type Serie struct {
	Name       string
	Layout     string
	Legend     string
	Fill       []string
	Width      float64
	Animated   bool
	Label      Option
	Background Option
	Data       string
}

// Build maps the decoded serie onto the engine configuration. Items
// stay empty, loading the data source is the caller's concern.
func (s Serie) Build(plot bars.Geometry) (bars.BarSerie, error) {
	ser := bars.BarSerie{
		Title:             s.Name,
		Fill:              s.Fill,
		IsAnimationActive: s.Animated,
		PlotArea:          plot,
		Label: bars.LabelSpec{
			Show:  s.Label.Enabled,
			Style: s.Label.Style,
		},
		Background: bars.BackgroundSpec{
			Enabled: s.Background.Enabled,
			Style:   s.Background.Style,
		},
	}
	switch s.Layout {
	case "", "horizontal":
		ser.Layout = bars.LayoutHorizontal
	case "vertical":
		ser.Layout = bars.LayoutVertical
	default:
		return ser, fmt.Errorf("%s: unknown layout", s.Layout)
	}
	if s.Legend != "" {
		t := bars.LegendType(s.Legend)
		if !t.Valid() {
			return ser, fmt.Errorf("%s: unknown legend type", s.Legend)
		}
		ser.LegendType = t
	}
	return ser, nil
}

// Option carries the polymorphic label/background configuration the
// format can express: a flag or a style attribute list.
type Option struct {
	Enabled bool
	Style   map[string]string
}

type Decoder struct {
	file string

	scan *Scanner
	curr Token
	peek Token
}

func NewDecoder(r io.Reader) *Decoder {
	d := Decoder{
		scan: Scan(r),
	}
	if n, ok := r.(interface{ Name() string }); ok {
		d.file = n.Name()
	}
	d.next()
	d.next()
	return &d
}

func (d *Decoder) Decode() (*Config, error) {
	cfg := Default()
	return &cfg, d.decode(&cfg)
}

func (d *Decoder) decode(cfg *Config) error {
	d.skipEOL()
	for !d.done() {
		if d.curr.Type != Keyword {
			return d.decodeError(fmt.Sprintf("unexpected token %s", d.curr))
		}
		var err error
		switch d.curr.Literal {
		case kwChart:
			err = d.decodeChart(cfg)
		case kwSerie:
			err = d.decodeSerie(cfg)
		case kwRender:
			err = d.decodeRender(cfg)
		default:
			err = d.decodeError(fmt.Sprintf("unexpected keyword %s", d.curr.Literal))
		}
		if err != nil {
			return err
		}
		d.skipEOL()
	}
	return nil
}

func (d *Decoder) decodeRender(cfg *Config) error {
	d.next()
	if err := d.expectKw(kwTo); err != nil {
		return err
	}
	d.next()
	path, err := d.getString()
	if err != nil {
		return err
	}
	cfg.Path = path
	return d.expectEOL()
}

func (d *Decoder) decodeChart(cfg *Config) error {
	d.next()
	return d.decodeBody(kwChart, func(option string) error {
		var err error
		switch option {
		case "title":
			cfg.Title, err = d.getString()
		case "kind":
			cfg.Kind, err = d.getString()
		case "width":
			cfg.Width, err = d.getFloat()
		case "height":
			cfg.Height, err = d.getFloat()
		case "legend":
			cfg.Legend, err = d.getString()
		case "padding":
			var pad []float64
			pad, err = d.getFloats()
			if err == nil && len(pad) != 4 {
				err = d.decodeError("padding wants 4 values")
			}
			if err == nil {
				cfg.Pad.Top, cfg.Pad.Right, cfg.Pad.Bottom, cfg.Pad.Left = pad[0], pad[1], pad[2], pad[3]
			}
		default:
			err = d.optionError(option, kwChart)
		}
		return err
	})
}

func (d *Decoder) decodeSerie(cfg *Config) error {
	d.next()
	var ser Serie
	if d.curr.Type == Literal {
		ser.Name = d.curr.Literal
		d.next()
	}
	err := d.decodeBody(kwSerie, func(option string) error {
		var err error
		switch option {
		case "layout":
			ser.Layout, err = d.getString()
		case "legend":
			ser.Legend, err = d.getString()
		case "fill":
			ser.Fill, err = d.getStrings()
		case "width":
			ser.Width, err = d.getFloat()
		case "animated":
			ser.Animated, err = d.getBool()
		case "label":
			ser.Label, err = d.getOption()
		case "background":
			ser.Background, err = d.getOption()
		case "data":
			ser.Data, err = d.getString()
		default:
			err = d.optionError(option, kwSerie)
		}
		return err
	})
	if err == nil {
		cfg.Series = append(cfg.Series, ser)
	}
	return err
}

func (d *Decoder) decodeBody(section string, decode func(option string) error) error {
	if err := d.expect(Lcurly); err != nil {
		return err
	}
	d.next()
	d.skipEOL()
	for d.curr.Type != Rcurly && !d.done() {
		if d.curr.Type == Comment {
			d.next()
			d.skipEOL()
			continue
		}
		if d.curr.Type != Literal {
			return d.decodeError(fmt.Sprintf("option name expected, got %s", d.curr))
		}
		option := d.curr.Literal
		d.next()
		if err := decode(option); err != nil {
			return err
		}
		if err := d.expectEOL(); err != nil {
			return err
		}
		d.skipEOL()
	}
	if err := d.expect(Rcurly); err != nil {
		return err
	}
	d.next()
	return nil
}

func (d *Decoder) getString() (string, error) {
	if d.curr.Type != Literal {
		return "", d.decodeError(fmt.Sprintf("literal expected, got %s", d.curr))
	}
	str := d.curr.Literal
	d.next()
	return str, nil
}

func (d *Decoder) getStrings() ([]string, error) {
	var all []string
	for {
		str, err := d.getString()
		if err != nil {
			return nil, err
		}
		all = append(all, str)
		if d.curr.Type != Comma {
			break
		}
		d.next()
	}
	return all, nil
}

func (d *Decoder) getFloat() (float64, error) {
	str, err := d.getString()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, d.decodeError(fmt.Sprintf("%s: not a number", str))
	}
	return f, nil
}

func (d *Decoder) getFloats() ([]float64, error) {
	var all []float64
	for {
		f, err := d.getFloat()
		if err != nil {
			return nil, err
		}
		all = append(all, f)
		if d.curr.Type != Comma {
			break
		}
		d.next()
	}
	return all, nil
}

func (d *Decoder) getBool() (bool, error) {
	if d.curr.Type != Boolean {
		return false, d.decodeError(fmt.Sprintf("boolean expected, got %s", d.curr))
	}
	ok := d.curr.Literal == "true"
	d.next()
	return ok, nil
}

func (d *Decoder) getOption() (Option, error) {
	var opt Option
	switch {
	case d.curr.Type == Boolean:
		ok, err := d.getBool()
		if err != nil {
			return opt, err
		}
		opt.Enabled = ok
	case d.curr.Type == Keyword && d.curr.Literal == kwStyle:
		d.next()
		style, err := d.getStyle()
		if err != nil {
			return opt, err
		}
		opt.Enabled = true
		opt.Style = style
	default:
		return opt, d.decodeError(fmt.Sprintf("boolean or style expected, got %s", d.curr))
	}
	return opt, nil
}

func (d *Decoder) getStyle() (map[string]string, error) {
	if err := d.expect(Lparen); err != nil {
		return nil, err
	}
	d.next()
	style := make(map[string]string)
	for d.curr.Type != Rparen && !d.done() {
		key, err := d.getString()
		if err != nil {
			return nil, err
		}
		value, err := d.getString()
		if err != nil {
			return nil, err
		}
		style[key] = value
		if d.curr.Type == Comma {
			d.next()
		}
	}
	if err := d.expect(Rparen); err != nil {
		return nil, err
	}
	d.next()
	return style, nil
}

func (d *Decoder) expect(kind rune) error {
	if d.curr.Type != kind {
		return d.decodeError(fmt.Sprintf("unexpected token %s", d.curr))
	}
	return nil
}

func (d *Decoder) expectKw(kw string) error {
	if d.curr.Type != Keyword || d.curr.Literal != kw {
		return d.decodeError(fmt.Sprintf("keyword %s expected, got %s", kw, d.curr))
	}
	return nil
}

func (d *Decoder) expectEOL() error {
	if d.curr.Type != EOL && d.curr.Type != EOF && d.curr.Type != Rcurly {
		return d.decodeError(fmt.Sprintf("end of line expected, got %s", d.curr))
	}
	return nil
}

func (d *Decoder) skipEOL() {
	for d.curr.Type == EOL || d.curr.Type == Comment {
		d.next()
	}
}

func (d *Decoder) done() bool {
	return d.curr.Type == EOF
}

func (d *Decoder) next() {
	d.curr = d.peek
	d.peek = d.scan.Scan()
}

func (d *Decoder) decodeError(message string) error {
	return DecodeError{
		Message:  message,
		File:     d.file,
		Position: d.curr.Position,
	}
}

func (d *Decoder) optionError(option, section string) error {
	return OptionError{
		Option:   option,
		Section:  section,
		File:     d.file,
		Position: d.curr.Position,
	}
}
