// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// settings holds the monitor's adjustable knobs. Fields are looked up by
// case-insensitive, unambiguous prefix through settingsTree, the way
// command names are.
type settings struct {
	StepCount    int  `doc:"instructions executed by a bare step command"`
	MemDumpBytes int  `doc:"default number of bytes shown by mem read"`
	TraceEnabled bool `doc:"whether executed instructions are logged"`
}

func newSettings() *settings {
	return &settings{
		StepCount:    1,
		MemDumpBytes: 64,
	}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	t := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, t.NumField())
	for i := range settingsFields {
		f := t.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		fmt.Fprintf(w, "    %-14s %-10v (%s)\n", f.name, v.Interface(), f.doc)
	}
}

func (s *settings) Set(key, value string) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return err
	}

	field := reflect.ValueOf(s).Elem().Field(f.index)
	switch f.kind {
	case reflect.Bool:
		b, err := stringToBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int:
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
			return errors.New("invalid integer value")
		}
		field.SetInt(int64(n))
	default:
		return errors.New("unsupported setting type")
	}
	return nil
}
