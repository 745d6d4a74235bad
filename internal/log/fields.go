package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldSlot      = "slot"
	FieldKey       = "key"
	FieldBackend   = "backend"
	FieldExpenseID = "expense_id"
	FieldGoalID    = "goal_id"
	FieldAmount    = "amount"
	FieldCount     = "count"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentKV      = "kv"
	ComponentAMQP    = "amqp"
	ComponentBackend = "backend"
	ComponentReport  = "report"
)

// Operations defines standard operation names
const (
	OpLoad    = "load"
	OpAdd     = "add"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpSet     = "set"
	OpGet     = "get"
	OpPublish = "publish"
	OpStartup = "startup"
)
