package models

import "fmt"

// DeletePolicy decides what happens to rows that reference a deleted row.
type DeletePolicy string

const (
	// DeleteDangle removes only the row; joins render the missing side as null.
	DeleteDangle DeletePolicy = "dangle"
	// DeleteRestrict rejects deleting a row that other rows still reference.
	DeleteRestrict DeletePolicy = "restrict"
	// DeleteCascade deletes referencing rows recursively.
	DeleteCascade DeletePolicy = "cascade"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch p := DeletePolicy(s); p {
	case DeleteDangle, DeleteRestrict, DeleteCascade:
		return p, nil
	case "":
		return DeleteDangle, nil
	}
	return "", fmt.Errorf("unknown delete policy %q (want dangle, restrict or cascade)", s)
}

// TransitionPolicy decides whether appointment status changes follow the
// Scheduled -> Completed/Cancelled state machine.
type TransitionPolicy string

const (
	TransitionsStrict     TransitionPolicy = "strict"
	TransitionsPermissive TransitionPolicy = "permissive"
)

func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch p := TransitionPolicy(s); p {
	case TransitionsStrict, TransitionsPermissive:
		return p, nil
	case "":
		return TransitionsStrict, nil
	}
	return "", fmt.Errorf("unknown status transition policy %q (want strict or permissive)", s)
}
