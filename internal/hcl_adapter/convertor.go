package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/labpatrol/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalString evaluates a literal expression and converts the result to a Go
// string. Numbers and bools are accepted and rendered in their canonical form.
func evalString(ctx context.Context, expr hcl.Expression, attrName string) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	return ctyToString(ctx, val, attrName)
}

// ctyToString converts a known, non-null primitive cty.Value to a string.
func ctyToString(ctx context.Context, val cty.Value, attrName string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("attribute '%s' must not be null", attrName)
	}
	if !val.Type().IsPrimitiveType() {
		return "", fmt.Errorf("attribute '%s' must be a string, number or bool, got %s", attrName, val.Type().FriendlyName())
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot convert attribute '%s' from %s to string: %w", attrName, val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(cty.String) {
		logger.Debug("Implicitly converted value type.",
			"attribute", attrName,
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	var out string
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return "", fmt.Errorf("failed to decode attribute '%s': %w", attrName, err)
	}
	return out, nil
}
