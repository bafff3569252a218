/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

// Default maximum count of concrete backing types which resolved layouts
// are kept by a record type
const DefaultShapeCacheSize = 64

// Struct tag used to name record field storage and to mark it read-only:
//
//	Df int32 `record:"df,readonly"`
const (
	TagName     = "record"
	TagReadOnly = "readonly"
)

// Bean accessor method prefixes
const (
	beanGetPrefix = "Get"
	beanIsPrefix  = "Is"
	beanSetPrefix = "Set"
)
