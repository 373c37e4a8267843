// Package normalize turns loosely shaped model output into records that
// conform to a schema.Spec.
package normalize

import (
	"sort"

	"jd-backend/internal/schema"
	"jd-backend/internal/shared/metrics"
	"jd-backend/internal/shared/telemetry"
)

// Normalize repairs key casing, resolves aliases, coerces shapes, synthesizes
// required_skills and validates against spec. Missing required fields are
// backfilled once before a second and final validation. raw is not modified.
//
// The result holds exactly the fields of spec; absent optional fields carry
// the zero value of their kind.
func Normalize(raw map[string]any, spec schema.Spec) (map[string]any, error) {
	v, err := newValidator(spec)
	if err != nil {
		return nil, err
	}

	rec := RepairKeys(raw)
	rec = ResolveAliases(rec)
	rec = CoerceShapes(rec)
	rec = SynthesizeRequiredSkills(rec)
	rec = Project(rec, spec)

	if _, err := v.validate(rec); err == nil {
		return Complete(rec, spec), nil
	}

	filled, injected := Backfill(rec, spec)
	if len(injected) > 0 {
		metrics.IncNormalizeBackfill()
		telemetry.Warn("normalize.backfill", map[string]any{
			"schema": spec.Name,
			"fields": injected,
		})
	}

	fields, err := v.validate(filled)
	if err != nil {
		telemetry.Error("normalize.failed", map[string]any{
			"schema": spec.Name,
			"fields": fields,
			"error":  err,
		})
		return nil, &ValidationError{Schema: spec.Name, Fields: fields, Cause: err}
	}
	return Complete(filled, spec), nil
}

// Backfill injects schema.Default for every absent required field and
// returns the injected names.
func Backfill(rec map[string]any, spec schema.Spec) (map[string]any, []string) {
	out := clone(rec)
	var injected []string
	for _, f := range spec.Required() {
		if _, ok := out[f.Name]; ok {
			continue
		}
		out[f.Name] = schema.Default(f.Kind)
		injected = append(injected, f.Name)
	}
	sort.Strings(injected)
	return out, injected
}

// Complete materializes absent optional fields with their zero value.
func Complete(rec map[string]any, spec schema.Spec) map[string]any {
	out := clone(rec)
	for _, f := range spec.Fields {
		if _, ok := out[f.Name]; !ok {
			out[f.Name] = schema.Zero(f.Kind)
		}
	}
	return out
}
