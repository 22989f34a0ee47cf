package taxonomy

import "github.com/nhle/mailbox-taxonomy/internal/model"

// builtin holds the canonical sets that ship with the engine, keyed by
// business type. These grow as more automation templates are added.
var builtin = map[string][]model.CanonicalEntry{
	"general": {
		{
			Key:         "URGENT",
			Path:        []string{"Urgent"},
			Color:       "#FB4C2F",
			Description: "Messages needing a same-day response",
			Priority:    1,
			Examples:    []string{"urgent", "important", "priority", "asap"},
		},
		{
			Key:         "SALES",
			Path:        []string{"Sales"},
			Color:       "#16A765",
			Description: "New business inquiries and quotes",
			Priority:    2,
			Examples:    []string{"sales", "leads", "inquiries", "quotes"},
		},
		{
			Key:         "SUPPORT",
			Path:        []string{"Support"},
			Color:       "#4986E7",
			Description: "Existing customer questions and issues",
			Priority:    3,
			Examples:    []string{"support", "help", "customer service"},
		},
		{
			Key:         "BILLING",
			Path:        []string{"Billing"},
			Color:       "#FFAD46",
			Description: "Invoices, payments, and receipts",
			Priority:    4,
			Examples:    []string{"billing", "invoices", "payments", "receipts"},
		},
		{
			Key:         "NEWSLETTERS",
			Path:        []string{"Newsletters"},
			Color:       "#B99AFF",
			Description: "Subscriptions and bulk mail",
			Priority:    8,
			Examples:    []string{"newsletters", "subscriptions", "promotions"},
		},
	},

	"home_services": {
		{
			Key:         "URGENT",
			Path:        []string{"Urgent"},
			Color:       "#FB4C2F",
			Description: "Emergency jobs and same-day callouts",
			Priority:    1,
			Examples:    []string{"urgent", "emergency", "asap"},
		},
		{
			Key:         "NEW_JOBS",
			Path:        []string{"Jobs", "New"},
			Color:       "#16A765",
			Description: "Incoming job requests and quote inquiries",
			Priority:    2,
			Examples:    []string{"new jobs", "job requests", "quotes", "estimates"},
		},
		{
			Key:         "SCHEDULED",
			Path:        []string{"Jobs", "Scheduled"},
			Color:       "#4986E7",
			Description: "Booked jobs awaiting the visit",
			Priority:    3,
			Examples:    []string{"scheduled", "booked", "appointments"},
		},
		{
			Key:         "INVOICING",
			Path:        []string{"Invoicing"},
			Color:       "#FFAD46",
			Description: "Invoices sent and payments received",
			Priority:    4,
			Examples:    []string{"invoicing", "invoices", "payments"},
		},
		{
			Key:         "REVIEWS",
			Path:        []string{"Reviews"},
			Color:       "#FAD165",
			Description: "Review requests and responses",
			Priority:    5,
			Examples:    []string{"reviews", "google reviews", "feedback"},
		},
	},

	"ecommerce": {
		{
			Key:         "ORDERS",
			Path:        []string{"Orders"},
			Color:       "#16A765",
			Description: "Order confirmations and updates",
			Priority:    1,
			Examples:    []string{"orders", "purchases", "confirmations"},
		},
		{
			Key:         "SHIPPING",
			Path:        []string{"Orders", "Shipping"},
			Color:       "#4986E7",
			Description: "Fulfilment and tracking notifications",
			Priority:    2,
			Examples:    []string{"shipping", "tracking", "delivery"},
		},
		{
			Key:         "RETURNS",
			Path:        []string{"Orders", "Returns"},
			Color:       "#FB4C2F",
			Description: "Return requests and refunds",
			Priority:    3,
			Examples:    []string{"returns", "refunds", "exchanges"},
		},
		{
			Key:         "SUPPORT",
			Path:        []string{"Support"},
			Color:       "#FFAD46",
			Description: "Customer questions and complaints",
			Priority:    4,
			Examples:    []string{"support", "help", "complaints"},
		},
		{
			Key:         "SUPPLIERS",
			Path:        []string{"Suppliers"},
			Color:       "#B99AFF",
			Description: "Supplier and wholesale correspondence",
			Priority:    6,
			Examples:    []string{"suppliers", "wholesale", "vendors"},
		},
	},
}
