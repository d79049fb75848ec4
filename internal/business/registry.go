package business

import (
	"sort"
	"strings"

	"github.com/tuannm99/bizconv/internal/criteria"
	"github.com/tuannm99/bizconv/internal/enum"
	"github.com/tuannm99/bizconv/internal/value"
)

var registry = map[string]enum.Reflector{
	"value-type":          value.KindTable,
	"operator":            criteria.OperatorTable,
	"order-type":          criteria.OrderTypeTable,
	"rollback-event-type": RollbackEventTypeTable,
	"record-log-event":    RecordLogEventTypeTable,
	"confidential-type":   ConfidentialTypeTable,
	"moderation-type":     ModerationTypeTable,
	"moderator-status":    ModeratorStatusTable,
	"chat-entry-type":     ChatEntryTypeTable,
	"workflow-state":      WorkflowStateTable,
	"workflow-priority":   WorkflowPriorityTable,
	"workflow-event-type": WorkflowEventTypeTable,
	"publish-status":      PublishStatusTable,
	"duration-unit":       DurationUnitTable,
	"node-action":         NodeActionTable,
	"condition-type":      ConditionTypeTable,
	"condition-operation": ConditionOperationTable,
}

// Table returns the enum table registered under key (case-insensitive).
func Table(key string) (enum.Reflector, bool) {
	r, ok := registry[strings.ToLower(strings.TrimSpace(key))]
	return r, ok
}

// TableKeys lists the registered keys in sorted order.
func TableKeys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
