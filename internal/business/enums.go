package business

import "github.com/tuannm99/bizconv/internal/enum"

// RollbackEventType is the rollback event type of an entity change.
type RollbackEventType int32

var RollbackEventTypeTable = enum.New("RollbackEntityRequest.EventType",
	enum.Entry[RollbackEventType]{Name: "INSERT", Code: 0},
	enum.Entry[RollbackEventType]{Name: "UPDATE", Code: 1},
	enum.Entry[RollbackEventType]{Name: "DELETE", Code: 2},
)

func (x RollbackEventType) String() string { return RollbackEventTypeTable.String(x) }

// RecordLogEventType is the event that produced a record log entry.
type RecordLogEventType int32

var RecordLogEventTypeTable = enum.New("RecordLog.EventType",
	enum.Entry[RecordLogEventType]{Name: "INSERT", Code: 0},
	enum.Entry[RecordLogEventType]{Name: "UPDATE", Code: 1},
	enum.Entry[RecordLogEventType]{Name: "DELETE", Code: 2},
)

func (x RecordLogEventType) String() string { return RecordLogEventTypeTable.String(x) }

// ConfidentialType is the visibility of a record chat or chat entry.
type ConfidentialType int32

var ConfidentialTypeTable = enum.New("ConfidentialType",
	enum.Entry[ConfidentialType]{Name: "PUBLIC", Code: 0},
	enum.Entry[ConfidentialType]{Name: "PARTER", Code: 1},
	enum.Entry[ConfidentialType]{Name: "INTERNAL", Code: 2},
)

func (x ConfidentialType) String() string { return ConfidentialTypeTable.String(x) }

// ModerationType is the moderation policy of a record chat.
type ModerationType int32

var ModerationTypeTable = enum.New("RecordChat.ModerationType",
	enum.Entry[ModerationType]{Name: "NOT_MODERATED", Code: 0},
	enum.Entry[ModerationType]{Name: "BEFORE_PUBLISHING", Code: 1},
	enum.Entry[ModerationType]{Name: "AFTER_PUBLISHING", Code: 2},
)

func (x ModerationType) String() string { return ModerationTypeTable.String(x) }

// ModeratorStatus is the moderation state of a chat entry.
type ModeratorStatus int32

var ModeratorStatusTable = enum.New("ChatEntry.ModeratorStatus",
	enum.Entry[ModeratorStatus]{Name: "NOT_DISPLAYED", Code: 0},
	enum.Entry[ModeratorStatus]{Name: "PUBLISHED", Code: 1},
	enum.Entry[ModeratorStatus]{Name: "SUSPICIUS", Code: 2},
	enum.Entry[ModeratorStatus]{Name: "TO_BE_REVIEWED", Code: 3},
)

func (x ModeratorStatus) String() string { return ModeratorStatusTable.String(x) }

// ChatEntryType is the layout of a chat entry.
type ChatEntryType int32

var ChatEntryTypeTable = enum.New("ChatEntry.ChatEntryType",
	enum.Entry[ChatEntryType]{Name: "NOTE_FLAT", Code: 0},
	enum.Entry[ChatEntryType]{Name: "FORUM_THREADED", Code: 1},
	enum.Entry[ChatEntryType]{Name: "WIKI", Code: 2},
)

func (x ChatEntryType) String() string { return ChatEntryTypeTable.String(x) }

// WorkflowState is the state of a running workflow process.
type WorkflowState int32

var WorkflowStateTable = enum.New("WorkflowProcess.WorkflowState",
	enum.Entry[WorkflowState]{Name: "RUNNING", Code: 0},
	enum.Entry[WorkflowState]{Name: "COMPLETED", Code: 1},
	enum.Entry[WorkflowState]{Name: "ABORTED", Code: 2},
	enum.Entry[WorkflowState]{Name: "TERMINATED", Code: 3},
	enum.Entry[WorkflowState]{Name: "SUSPENDED", Code: 4},
	enum.Entry[WorkflowState]{Name: "NOT_STARTED", Code: 5},
)

func (x WorkflowState) String() string { return WorkflowStateTable.String(x) }

// WorkflowPriority is the priority of a workflow process or node.
type WorkflowPriority int32

var WorkflowPriorityTable = enum.New("WorkflowProcess.Priority",
	enum.Entry[WorkflowPriority]{Name: "URGENT", Code: 0},
	enum.Entry[WorkflowPriority]{Name: "HIGH", Code: 1},
	enum.Entry[WorkflowPriority]{Name: "MEDIUM", Code: 2},
	enum.Entry[WorkflowPriority]{Name: "LOW", Code: 3},
	enum.Entry[WorkflowPriority]{Name: "MINOR", Code: 4},
)

func (x WorkflowPriority) String() string { return WorkflowPriorityTable.String(x) }

// WorkflowEventType is the kind of workflow event.
type WorkflowEventType int32

var WorkflowEventTypeTable = enum.New("WorkflowEvent.EventType",
	enum.Entry[WorkflowEventType]{Name: "PROCESS_CREATED", Code: 0},
	enum.Entry[WorkflowEventType]{Name: "PROCESS_COMPLETED", Code: 1},
	enum.Entry[WorkflowEventType]{Name: "STATE_CHANGED", Code: 2},
)

func (x WorkflowEventType) String() string { return WorkflowEventTypeTable.String(x) }

// PublishStatus is the publication state of a workflow definition.
type PublishStatus int32

var PublishStatusTable = enum.New("WorkflowDefinition.PublishStatus",
	enum.Entry[PublishStatus]{Name: "RELEASED", Code: 0},
	enum.Entry[PublishStatus]{Name: "TEST", Code: 1},
	enum.Entry[PublishStatus]{Name: "UNDER_REVISION", Code: 2},
	enum.Entry[PublishStatus]{Name: "VOID", Code: 3},
)

func (x PublishStatus) String() string { return PublishStatusTable.String(x) }

// DurationUnit is the unit of workflow durations.
type DurationUnit int32

var DurationUnitTable = enum.New("WorkflowDefinition.DurationUnit",
	enum.Entry[DurationUnit]{Name: "DAY", Code: 0},
	enum.Entry[DurationUnit]{Name: "HOUR", Code: 1},
	enum.Entry[DurationUnit]{Name: "MINUTE", Code: 2},
	enum.Entry[DurationUnit]{Name: "MONTH", Code: 3},
	enum.Entry[DurationUnit]{Name: "SECOND", Code: 4},
	enum.Entry[DurationUnit]{Name: "YEAR", Code: 5},
)

func (x DurationUnit) String() string { return DurationUnitTable.String(x) }

// NodeAction is the what a workflow node does.
type NodeAction int32

var NodeActionTable = enum.New("WorkflowNode.Action",
	enum.Entry[NodeAction]{Name: "USER_CHOICE", Code: 0},
	enum.Entry[NodeAction]{Name: "DOCUMENT_ACTION", Code: 1},
	enum.Entry[NodeAction]{Name: "SUB_WORKFLOW", Code: 2},
	enum.Entry[NodeAction]{Name: "EMAIL", Code: 3},
	enum.Entry[NodeAction]{Name: "APPS_PROCESS", Code: 4},
	enum.Entry[NodeAction]{Name: "SMART_VIEW", Code: 5},
	enum.Entry[NodeAction]{Name: "APPS_REPORT", Code: 6},
	enum.Entry[NodeAction]{Name: "SMART_BROWSE", Code: 7},
	enum.Entry[NodeAction]{Name: "APPS_TASK", Code: 8},
	enum.Entry[NodeAction]{Name: "SET_VARIABLE", Code: 9},
	enum.Entry[NodeAction]{Name: "USER_WINDOW", Code: 10},
	enum.Entry[NodeAction]{Name: "USER_FORM", Code: 11},
	enum.Entry[NodeAction]{Name: "WAIT_SLEEP", Code: 12},
)

func (x NodeAction) String() string { return NodeActionTable.String(x) }

// ConditionType is the how a workflow condition joins the previous one.
type ConditionType int32

var ConditionTypeTable = enum.New("WorkflowCondition.ConditionType",
	enum.Entry[ConditionType]{Name: "AND", Code: 0},
	enum.Entry[ConditionType]{Name: "OR", Code: 1},
)

func (x ConditionType) String() string { return ConditionTypeTable.String(x) }

// ConditionOperation compares a workflow condition column to its value.
// Code 3 is not assigned.
type ConditionOperation int32

var ConditionOperationTable = enum.New("WorkflowCondition.Operation",
	enum.Entry[ConditionOperation]{Name: "EQUAL", Code: 0},
	enum.Entry[ConditionOperation]{Name: "NOT_EQUAL", Code: 1},
	enum.Entry[ConditionOperation]{Name: "LIKE", Code: 2},
	enum.Entry[ConditionOperation]{Name: "GREATER", Code: 4},
	enum.Entry[ConditionOperation]{Name: "GREATER_EQUAL", Code: 5},
	enum.Entry[ConditionOperation]{Name: "LESS", Code: 6},
	enum.Entry[ConditionOperation]{Name: "LESS_EQUAL", Code: 7},
	enum.Entry[ConditionOperation]{Name: "BETWEEN", Code: 8},
	enum.Entry[ConditionOperation]{Name: "SQL", Code: 9},
)

func (x ConditionOperation) String() string { return ConditionOperationTable.String(x) }
