package entity

// StatusView is the display projection of an order status for one role.
// AvailableActions is derived from the transition table so rendered buttons
// and permitted transitions cannot drift apart.
type StatusView struct {
	Label            string   `json:"label"`
	ColorClass       string   `json:"color_class"`
	Icon             string   `json:"icon"`
	AvailableActions []Status `json:"available_actions"`
}

// ProjectStatus maps a status to its display view for the given role.
// Pure: identical inputs always yield identical output.
func ProjectStatus(s Status, by Role) StatusView {
	v := StatusView{
		Label:            statusLabel(s),
		ColorClass:       statusColor(s),
		Icon:             statusIcon(s),
		AvailableActions: AllowedTargets(s, by),
	}
	return v
}

func statusLabel(s Status) string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusAccepted:
		return "ACCEPTED"
	case StatusPreparing:
		return "PREPARING"
	case StatusReady:
		return "READY FOR PICKUP"
	case StatusCompleted:
		return "DELIVERED"
	case StatusCancelled:
		return "CANCELLED"
	case StatusRejected:
		return "REJECTED"
	default:
		return string(s)
	}
}

func statusColor(s Status) string {
	switch s {
	case StatusPending:
		return "bg-yellow-500 text-white"
	case StatusAccepted:
		return "bg-blue-400 text-white"
	case StatusPreparing:
		return "bg-blue-500 text-white"
	case StatusReady:
		return "bg-orange-500 text-white"
	case StatusCompleted:
		return "bg-green-500 text-white"
	case StatusCancelled, StatusRejected:
		return "bg-red-500 text-white"
	default:
		return "bg-muted"
	}
}

func statusIcon(s Status) string {
	switch s {
	case StatusPending, StatusAccepted:
		return "clock"
	case StatusPreparing:
		return "package"
	case StatusReady, StatusCompleted:
		return "check-circle"
	case StatusCancelled, StatusRejected:
		return "x-circle"
	default:
		return ""
	}
}
