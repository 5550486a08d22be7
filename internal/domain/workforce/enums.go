package workforce

const (
	DepartmentEngineering = "Engineering"
	DepartmentMarketing   = "Marketing"
	DepartmentSales       = "Sales"
	DepartmentHR          = "HR"
	DepartmentFinance     = "Finance"
	DepartmentOperations  = "Operations"
)

// Departments is the fixed department enum, in canonical order.
var Departments = []string{
	DepartmentEngineering,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentHR,
	DepartmentFinance,
	DepartmentOperations,
}

const (
	StatusPlanning   = "Planning"
	StatusInProgress = "In Progress"
	StatusTesting    = "Testing"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
)

var ProjectStatuses = []string{
	StatusPlanning,
	StatusInProgress,
	StatusTesting,
	StatusCompleted,
	StatusOnHold,
}

// IsActiveStatus reports whether a project in this status counts as active.
func IsActiveStatus(status string) bool {
	return status == StatusInProgress || status == StatusPlanning
}

const (
	GapLevelCritical = "critical"
	GapLevelModerate = "moderate"
	GapLevelLow      = "low"
)

var GapLevels = []string{GapLevelCritical, GapLevelModerate, GapLevelLow}
