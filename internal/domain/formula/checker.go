package formula

import (
	"context"
	"fmt"

	"fabrica/internal/core/apperror"
	"fabrica/internal/core/id"
	"fabrica/internal/core/tx"
	"fabrica/internal/domain/catalogs/rawmaterial"
	"fabrica/pkg/logger"
)

// Shortfall describes one raw material that cannot cover a planned run.
type Shortfall struct {
	RawMaterialID id.ID  `json:"rawMaterialId"`
	Name          string `json:"name"`
	Required      int64  `json:"required"`
	Available     int64  `json:"available"`
	Missing       int64  `json:"missing"`
}

// CheckResult is the outcome of a requirement check.
type CheckResult struct {
	Satisfied  bool        `json:"satisfied"`
	Shortfalls []Shortfall `json:"shortfalls,omitempty"`
}

// Checker evaluates and consumes raw material requirements for
// production runs. Consumption is all-or-nothing: either every formula
// line is decremented in one transaction or stock is left untouched.
type Checker struct {
	lines     Repository
	materials rawmaterial.Repository
	txManager tx.Manager
}

// NewChecker creates a requirement checker.
func NewChecker(lines Repository, materials rawmaterial.Repository, txManager tx.Manager) *Checker {
	return &Checker{
		lines:     lines,
		materials: materials,
		txManager: txManager,
	}
}

// Check evaluates whether quantity units of the product can be supplied
// from current stock, without consuming anything. A product with no
// formula lines is trivially satisfied.
func (c *Checker) Check(ctx context.Context, productID id.ID, quantity int64) (CheckResult, error) {
	if quantity <= 0 {
		return CheckResult{}, apperror.NewInvalidQuantity(quantity)
	}

	lines, err := c.lines.ListActiveByProduct(ctx, productID)
	if err != nil {
		return CheckResult{}, fmt.Errorf("list formula lines: %w", err)
	}

	return c.evaluate(ctx, lines, quantity, false)
}

// CheckAndConsume evaluates the requirements for quantity units of the
// product and, when every line is covered, decrements raw material
// stock accordingly. Rows are locked before evaluation so the decision
// and the decrement see the same quantities.
func (c *Checker) CheckAndConsume(ctx context.Context, productID id.ID, quantity int64, actor id.ID) (CheckResult, error) {
	if quantity <= 0 {
		return CheckResult{}, apperror.NewInvalidQuantity(quantity)
	}

	var result CheckResult
	err := c.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		lines, err := c.lines.ListActiveByProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("list formula lines: %w", err)
		}

		result, err = c.evaluate(ctx, lines, quantity, true)
		if err != nil {
			return err
		}
		if !result.Satisfied {
			// Nothing was decremented; surface the shortfall to the caller.
			return apperror.NewRequirementsNotMet(productID)
		}

		for _, line := range lines {
			need := line.RequiredQuantity * quantity
			if err := c.materials.ApplyQuantityDelta(ctx, line.RawMaterialID, -need, actor); err != nil {
				return fmt.Errorf("consume raw material %s: %w", line.RawMaterialID, err)
			}
		}
		return nil
	})

	if err != nil {
		if apperror.IsRequirementsNotMet(err) {
			logger.Info(ctx, "production requirements not met",
				"product_id", productID,
				"quantity", quantity,
				"shortfalls", len(result.Shortfalls),
			)
			return result, nil
		}
		return CheckResult{}, err
	}

	return result, nil
}

// evaluate compares each line's requirement against available stock.
// With lock set, rows are read FOR UPDATE so a subsequent decrement in
// the same transaction cannot race another checker.
func (c *Checker) evaluate(ctx context.Context, lines []*Line, quantity int64, lock bool) (CheckResult, error) {
	result := CheckResult{Satisfied: true}

	for _, line := range lines {
		var (
			mat *rawmaterial.RawMaterial
			err error
		)
		if lock {
			mat, err = c.materials.GetForUpdate(ctx, line.RawMaterialID)
		} else {
			mat, err = c.materials.GetByID(ctx, line.RawMaterialID)
		}
		if err != nil {
			if apperror.IsNotFound(err) {
				return CheckResult{}, apperror.NewNotFound("raw_material", line.RawMaterialID.String())
			}
			return CheckResult{}, fmt.Errorf("load raw material %s: %w", line.RawMaterialID, err)
		}

		need := line.RequiredQuantity * quantity
		if mat.AvailableQuantity < need {
			result.Satisfied = false
			result.Shortfalls = append(result.Shortfalls, Shortfall{
				RawMaterialID: mat.ID,
				Name:          mat.Name,
				Required:      need,
				Available:     mat.AvailableQuantity,
				Missing:       need - mat.AvailableQuantity,
			})
		}
	}

	return result, nil
}
