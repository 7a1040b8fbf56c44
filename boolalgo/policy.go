// Package boolalgo declares the common contract the three Boolean search
// strategies (enumpolicy, beampolicy, setcoverpolicy) implement, so the
// meta driver can run whichever one the caller selected without knowing
// its internals.
package boolalgo

import (
	"github.com/katalvlaran/ltlsynth/formula"
	"github.com/katalvlaran/ltlsynth/ops"
	"github.com/katalvlaran/ltlsynth/promote"
)

// Policy is a Boolean synthesis strategy: given the formulas promoted out
// of the LTL phase and a target, try to build a Boolean combination of
// them that matches it exactly.
type Policy interface {
	Run(cache *promote.InitialBoolCache, operators ops.Operators, target []bool) (*formula.FormulaTree, bool)
}
