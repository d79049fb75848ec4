package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tuannm99/bizconv/internal/business"
	"github.com/tuannm99/bizconv/internal/criteria"
	"github.com/tuannm99/bizconv/internal/value"
	"github.com/tuannm99/bizconv/internal/wire"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingArg     = errors.New("missing argument")
)

type app struct {
	builder criteria.Builder
	log     *slog.Logger
	format  wire.Format
	out     io.Writer
	kind    string
	outPath string

	// inFormat forces the input format; empty picks it from the file name.
	inFormat wire.Format
	sorted   bool
}

func (a *app) run(cmd string, args []string) error {
	switch cmd {
	case "encode":
		return a.encode(args)
	case "decode":
		return a.decode(args)
	case "criteria":
		return a.buildCriteria(args)
	case "decode-criteria":
		return a.decodeCriteria(args)
	case "enum":
		return a.enum(args)
	case "parameter":
		return a.parameter(args)
	case "selection":
		return a.selection(args)
	case "decode-entity":
		return a.decodeEntity(args)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}

func (a *app) encode(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("encode: %w: VALUE", errMissingArg)
	}

	kind, err := parseKind(a.kind)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	out := make([]*value.Value, 0, len(args))
	for _, arg := range args {
		x := parseLiteral(arg)
		if kind == value.KindUnknown {
			out = append(out, a.builder.Codec.Encode(x))
			continue
		}
		out = append(out, a.builder.Codec.EncodeAs(x, kind))
	}
	if len(out) == 1 {
		return a.emit(out[0])
	}
	if a.format == wire.FormatFrame {
		return a.emitFrames(out)
	}
	return a.emit(out)
}

// emitFrames writes one frame per value, the stream decode reads back.
func (a *app) emitFrames(vs []*value.Value) error {
	var buf bytes.Buffer
	for _, v := range vs {
		if err := wire.WriteFrame(&buf, v); err != nil {
			return err
		}
	}
	if a.outPath != "" {
		return writeFile(a.outPath, buf.Bytes())
	}
	_, err := a.out.Write(buf.Bytes())
	return err
}

// parseKind resolves a --kind value; empty means infer.
func parseKind(s string) (value.Kind, error) {
	if s == "" {
		return value.KindUnknown, nil
	}
	k, ok := value.ParseKind(strings.ToUpper(strings.TrimSpace(s)))
	if !ok || k == value.KindUnknown {
		return value.KindUnknown, fmt.Errorf("unknown kind %q", s)
	}
	return k, nil
}

// decodedValue is what decode prints for one wire value.
type decodedValue struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value any    `json:"value" yaml:"value"`
}

func (a *app) decode(args []string) error {
	data, name, err := readInput(args)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if a.inputFormat(name) == wire.FormatFrame {
		return a.decodeFrames(data)
	}
	var v value.Value
	if err := a.unmarshalInput(name, data, &v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return a.emit(a.decodedValue(&v))
}

func (a *app) decodedValue(v *value.Value) decodedValue {
	return decodedValue{Kind: v.Kind.String(), Value: a.builder.Codec.Decode(v)}
}

// decodeFrames decodes every frame of a stream of wire values.
func (a *app) decodeFrames(data []byte) error {
	r := bytes.NewReader(data)
	var out []decodedValue
	for {
		var v value.Value
		err := wire.ReadFrame(r, &v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("decode: frame %d: %w", len(out)+1, err)
		}
		out = append(out, a.decodedValue(&v))
	}
	a.log.Debug("decoded frames", "count", len(out))
	if len(out) == 1 {
		return a.emit(out[0])
	}
	return a.emit(out)
}

func (a *app) buildCriteria(args []string) error {
	data, name, err := readInput(args)
	if err != nil {
		return fmt.Errorf("criteria: %w", err)
	}
	var p criteria.CriteriaParams
	if err := a.unmarshalInput(name, data, &p); err != nil {
		return fmt.Errorf("criteria: %w", err)
	}
	normalizeParams(&p)
	if p.TableName == "" {
		a.log.Warn("criteria without table name")
	}
	return a.emit(a.builder.BuildCriteria(p))
}

func (a *app) decodeCriteria(args []string) error {
	data, name, err := readInput(args)
	if err != nil {
		return fmt.Errorf("decode-criteria: %w", err)
	}
	var c criteria.Criteria
	if err := a.unmarshalInput(name, data, &c); err != nil {
		return fmt.Errorf("decode-criteria: %w", err)
	}
	return a.emit(a.builder.DecodeCriteria(&c))
}

// parameter encodes one COLUMN VALUE pair, honoring --kind.
func (a *app) parameter(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("parameter: %w: COLUMN VALUE", errMissingArg)
	}
	kind, err := parseKind(a.kind)
	if err != nil {
		return fmt.Errorf("parameter: %w", err)
	}
	x := parseLiteral(strings.Join(args[1:], " "))
	return a.emit(a.builder.BuildParameter(args[0], x, kind))
}

// selectionParams is the input document of the selection command.
type selectionParams struct {
	SelectionID   int64  `yaml:"selectionId"`
	SelectionUUID string `yaml:"selectionUuid"`
	Values        []struct {
		ColumnName string `yaml:"columnName"`
		Value      any    `yaml:"value"`
		Kind       string `yaml:"kind"`
	} `yaml:"values"`
}

func (a *app) selection(args []string) error {
	data, name, err := readInput(args)
	if err != nil {
		return fmt.Errorf("selection: %w", err)
	}
	var p selectionParams
	if err := a.unmarshalInput(name, data, &p); err != nil {
		return fmt.Errorf("selection: %w", err)
	}

	values := make([]criteria.SelectionValue, 0, len(p.Values))
	for _, sv := range p.Values {
		kind, err := parseKind(sv.Kind)
		if err != nil {
			return fmt.Errorf("selection: %s: %w", sv.ColumnName, err)
		}
		values = append(values, criteria.SelectionValue{
			ColumnName: sv.ColumnName,
			Value:      normalizeLiteral(sv.Value),
			Kind:       kind,
		})
	}
	return a.emit(a.builder.BuildSelection(p.SelectionID, p.SelectionUUID, values))
}

// decodeEntity decodes an entity or lookup record; --sorted returns its
// values as key-sorted pairs.
func (a *app) decodeEntity(args []string) error {
	data, name, err := readInput(args)
	if err != nil {
		return fmt.Errorf("decode-entity: %w", err)
	}
	var e business.Entity
	if err := a.unmarshalInput(name, data, &e); err != nil {
		return fmt.Errorf("decode-entity: %w", err)
	}
	d := business.Decoder{Builder: a.builder}
	if a.sorted {
		return a.emit(d.DecodeEntityList(&e))
	}
	return a.emit(d.DecodeEntity(&e))
}

type enumEntry struct {
	Name string `json:"name" yaml:"name"`
	Code int32  `json:"code" yaml:"code"`
}

func (a *app) enum(args []string) error {
	if len(args) == 0 {
		return a.emit(business.TableKeys())
	}
	tbl, ok := business.Table(args[0])
	if !ok {
		return fmt.Errorf("enum: unknown table %q (try: bizconv enum)", args[0])
	}
	if len(args) == 1 {
		pairs := tbl.Pairs()
		out := make([]enumEntry, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, enumEntry{Name: p.Name, Code: p.Code})
		}
		return a.emit(out)
	}

	key := strings.TrimSpace(args[1])
	if code, err := strconv.ParseInt(key, 10, 32); err == nil {
		name, ok := tbl.NameOfCode(int32(code))
		if !ok {
			return fmt.Errorf("enum: %s has no code %d", tbl.Name(), code)
		}
		return a.emit(enumEntry{Name: name, Code: int32(code)})
	}
	code, ok := tbl.CodeOfName(strings.ToUpper(key))
	if !ok {
		return fmt.Errorf("enum: %s has no name %q", tbl.Name(), key)
	}
	return a.emit(enumEntry{Name: strings.ToUpper(key), Code: code})
}

// emit writes v in the configured format, to --out when set. CBOR on a
// terminal is shown in diagnostic notation.
func (a *app) emit(v any) error {
	data, err := wire.Marshal(a.format, v)
	if err != nil {
		return err
	}

	if a.outPath != "" {
		return writeFile(a.outPath, data)
	}

	switch a.format {
	case wire.FormatFrame:
		// frames go out raw so they can be piped into decode
		_, err = a.out.Write(data)
		return err
	case wire.FormatCBOR:
		diag, err := wire.Diagnose(data)
		if err != nil {
			return err
		}
		data = []byte(diag)
	}

	if _, err := a.out.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(a.out, "\n")
	}
	return err
}

// writeFile reports the Close error too: a failed flush means a short file.
func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	_, err = f.Write(data)
	return err
}

// readInput returns the document named by args: a file, "-" for stdin, or
// the arguments themselves as an inline document.
func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 {
		return nil, "", fmt.Errorf("%w: FILE|-|DOC", errMissingArg)
	}
	if len(args) == 1 {
		if args[0] == "-" {
			data, err := io.ReadAll(os.Stdin)
			return data, "", err
		}
		if fi, err := os.Stat(args[0]); err == nil && !fi.IsDir() {
			data, err := os.ReadFile(args[0])
			return data, args[0], err
		}
	}
	return []byte(strings.Join(args, " ")), "", nil
}

// inputFormat is --input-format when set, else CBOR and frame files by
// extension and YAML for everything else (YAML also accepts JSON).
func (a *app) inputFormat(name string) wire.Format {
	if a.inFormat != "" {
		return a.inFormat
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".cbor":
		return wire.FormatCBOR
	case ".frame":
		return wire.FormatFrame
	default:
		return wire.FormatYAML
	}
}

func (a *app) unmarshalInput(name string, data []byte, v any) error {
	return wire.Unmarshal(a.inputFormat(name), data, v)
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"}

// parseLiteral reads one command-line scalar: YAML numbers, booleans and
// null keep their type, date-like strings become times.
func parseLiteral(s string) any {
	var x any
	if err := yaml.Unmarshal([]byte(s), &x); err != nil {
		return s
	}
	if str, ok := x.(string); ok {
		return asDate(str)
	}
	return x
}

func asDate(s string) any {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return s
}

// normalizeParams turns date-like strings in YAML params into times.
func normalizeParams(p *criteria.CriteriaParams) {
	for i, x := range p.Values {
		p.Values[i] = normalizeLiteral(x)
	}
	for i := range p.Conditions {
		c := &p.Conditions[i]
		c.Value = normalizeLiteral(c.Value)
		c.ValueTo = normalizeLiteral(c.ValueTo)
		for j, x := range c.Values {
			c.Values[j] = normalizeLiteral(x)
		}
	}
}

func normalizeLiteral(x any) any {
	if s, ok := x.(string); ok {
		return asDate(s)
	}
	return x
}
