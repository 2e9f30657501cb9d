package delegation

import "errors"

var (
	ErrEmptyIDParam           = errors.New("backup approver id can't be empty")
	ErrEmptyRoleParam         = errors.New("role can't be empty")
	ErrBackupApproverNotFound = errors.New("backup approver not found")
	ErrRoleMappingNotFound    = errors.New("role mapping not found")
)
