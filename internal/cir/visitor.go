package cir

// Visitor is the double-dispatch interface every Expression IR consumer
// (chiefly the Emitter, but also SimplifyExpressions and RefDeref) implements
// against. The set of Visit methods is closed and must stay exhaustive: a
// new Expr variant forces every Visitor implementation to add a method.
type Visitor interface {
	VisitValue(*Value)
	VisitGlobalValue(*GlobalValue)
	VisitStackAlloc(*StackAlloc)
	VisitAggregateInitializer(*AggregateInitializer)

	VisitRefExpr(*RefExpr)
	VisitDerefExpr(*DerefExpr)
	VisitCastExpr(*CastExpr)
	VisitRetExpr(*RetExpr)

	VisitAddExpr(*AddExpr)
	VisitSubExpr(*SubExpr)
	VisitMulExpr(*MulExpr)
	VisitDivExpr(*DivExpr)
	VisitRemExpr(*RemExpr)
	VisitAndExpr(*AndExpr)
	VisitOrExpr(*OrExpr)
	VisitXorExpr(*XorExpr)
	VisitShlExpr(*ShlExpr)
	VisitAshrExpr(*AshrExpr)
	VisitLshrExpr(*LshrExpr)

	VisitCmpExpr(*CmpExpr)

	VisitLogicalAndExpr(*LogicalAndExpr)
	VisitLogicalOrExpr(*LogicalOrExpr)

	VisitArrayElementExpr(*ArrayElementExpr)
	VisitStructElementExpr(*StructElementExpr)
	VisitArrowExpr(*ArrowExpr)
	VisitPointerShiftExpr(*PointerShiftExpr)

	VisitIfExpr(*IfExpr)
	VisitSwitchExpr(*SwitchExpr)
	VisitGotoExpr(*GotoExpr)
	VisitSelectExpr(*SelectExpr)
	VisitCallExpr(*CallExpr)
	VisitExprList(*ExprList)
	VisitAsmExpr(*AsmExpr)

	VisitAssignExpr(*AssignExpr)
}
