package entities

import "time"

// Audit field names consumed verbatim by the existing report/print tooling.
// Renaming any of these breaks downstream templates.
const (
	AuditFieldCreationDate  = "creation_date"
	AuditFieldApprovalDate  = "contract_approval_date"
	AuditFieldContractDate  = "contract_date"
	AuditFieldDeliveryDate  = "contract_delivery_date"
	AuditFieldRejectionDate = "rejection_date"

	auditNoteSuffix      = "_note"
	auditTimestampLayout = time.RFC3339
)

// auditFieldByStatus maps a status to its fixed audit field name. Statuses
// without an entry (reports, transactions mid-flow) simply do not project.
var auditFieldByStatus = map[Status]string{
	StatusNew:        AuditFieldCreationDate,
	StatusOpen:       AuditFieldCreationDate,
	StatusApproved:   AuditFieldApprovalDate,
	StatusContracted: AuditFieldContractDate,
	StatusDelivered:  AuditFieldDeliveryDate,
	StatusRejected:   AuditFieldRejectionDate,
}

// NamedAuditFields projects the entity history into the fixed-name date/note
// pairs. Each pair is populated from the latest event of its status; statuses
// with no event are left out entirely so consumers can tell "absent" from
// "present but empty".
func (e LifecycleEntity) NamedAuditFields() map[string]string {
	out := make(map[string]string)
	for status, field := range auditFieldByStatus {
		ev, ok := e.Latest(status)
		if !ok {
			continue
		}
		out[field] = ev.Timestamp.UTC().Format(auditTimestampLayout)
		out[field+auditNoteSuffix] = ev.Note
	}
	return out
}
