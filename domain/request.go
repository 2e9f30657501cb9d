package domain

const (
	RequestTypeLeave      = "leave"
	RequestTypeAttendance = "attendance"
	RequestTypeExpense    = "expense"
	RequestTypeAsset      = "asset"
	RequestTypeExit       = "exit"
	RequestTypePayroll    = "payroll"

	SystemActorName = "system"
)

// RequestContext is the attribute bag a request originator submits
type RequestContext struct {
	RequestType    string                 `json:"request_type" yaml:"request_type" validate:"required"`
	RequesterID    string                 `json:"requester_id" yaml:"requester_id" validate:"required"`
	Department     string                 `json:"department,omitempty" yaml:"department,omitempty"`
	Location       string                 `json:"location,omitempty" yaml:"location,omitempty"`
	RequesterRoles []string               `json:"requester_roles,omitempty" yaml:"requester_roles,omitempty"`
	Attributes     map[string]interface{} `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Vars returns the variables visible to conditions. Built-in fields take precedence over attributes of the same name.
func (rc RequestContext) Vars() map[string]interface{} {
	vars := make(map[string]interface{}, len(rc.Attributes)+4)
	for k, v := range rc.Attributes {
		vars[k] = v
	}
	vars["request_type"] = rc.RequestType
	vars["requester_id"] = rc.RequesterID
	if rc.Department != "" {
		vars["department"] = rc.Department
	}
	if rc.Location != "" {
		vars["location"] = rc.Location
	}
	return vars
}

func (rc RequestContext) Clone() RequestContext {
	clone := rc
	clone.RequesterRoles = copyStrings(rc.RequesterRoles)
	if rc.Attributes != nil {
		clone.Attributes = make(map[string]interface{}, len(rc.Attributes))
		for k, v := range rc.Attributes {
			clone.Attributes[k] = v
		}
	}
	return clone
}
