/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package records

import "github.com/google/uuid"

// Opaque owner token for record delegates
type Owner struct {
	id uuid.UUID
}

// Returns new random owner token
func NewOwner() Owner {
	return Owner{id: uuid.New()}
}

func (o Owner) String() string { return "owner-" + o.id.String() }
