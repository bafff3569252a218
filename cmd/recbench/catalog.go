/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"errors"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/records/pkg/records"
)

type product struct {
	ID      int64 `record:"id,readonly"`
	Name    string
	Price   float64
	Qty     int32
	Active  bool
	Grade   rune
	Tags    [4]string
	Weights []float32
}

type auditedProduct struct {
	product
	Revision int64
	Author   string
}

func (p *auditedProduct) GetRevision() int64 { return p.Revision }

func (p *auditedProduct) SetRevision(v int64) { p.Revision = v }

// Record type with the workload used to benchmark it
type entry struct {
	rt       *records.RecordType
	exercise func(r records.IRecord, i int) error
}

type catalog map[string]entry

func (c catalog) names() []string {
	names := maps.Keys(c)
	slices.Sort(names)
	return names
}

func newCatalog() catalog {
	productType := records.NewType[product](records.Constructor(func() *product {
		return &product{ID: 1, Weights: make([]float32, 3)}
	}))
	id := productType.LongField("id")
	name := records.ObjectField[string](productType, "name")
	price := productType.DoubleField("price")
	qty := productType.IntField("qty")
	active := productType.BooleanField("active")
	grade := productType.CharField("grade")
	tags := records.ObjectArrayField[string](productType, "tags", 4)
	weights := productType.FloatArrayField("weights", 3, records.Transient())

	exerciseProduct := func(r records.IRecord, i int) error {
		if _, err := id.Get(r); err != nil {
			return err
		}
		v, err := qty.Get(r)
		if err != nil {
			return err
		}
		w, err := weights.Get(r, i%weights.Len())
		if err != nil {
			return err
		}
		return errors.Join(
			name.Set(r, "product"),
			price.Set(r, float64(i)/100),
			qty.Set(r, v+1),
			active.Set(r, i%2 == 0),
			grade.Set(r, 'A'+rune(i%26)),
			tags.Set(r, i%tags.Len(), "tag"),
			weights.Set(r, i%weights.Len(), w+1),
		)
	}

	auditedType := records.NewType[auditedProduct](records.Extends(productType))
	revision := auditedType.LongField("revision")
	author := records.ObjectField[string](auditedType, "author")

	exerciseAudited := func(r records.IRecord, i int) error {
		if err := exerciseProduct(r, i); err != nil {
			return err
		}
		rev, err := revision.Get(r)
		if err != nil {
			return err
		}
		return errors.Join(revision.Set(r, rev+1), author.Set(r, "bench"))
	}

	return catalog{
		productType.Name(): {rt: productType, exercise: exerciseProduct},
		auditedType.Name(): {rt: auditedType, exercise: exerciseAudited},
	}
}
