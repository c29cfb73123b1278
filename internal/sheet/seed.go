package sheet

// DefaultRecords returns the built-in seed set of job requests.
func DefaultRecords() []*Record {
	return []*Record{
		{
			ID:         "1",
			JobRequest: "Launch social media campaign for product launch",
			Submitted:  "15-01-2024",
			Status:     StatusInProgress,
			Submitter:  "Alisha Patel",
			URL:        "www.aishapattel.com",
			Assigned:   "Sophie Choudhury",
			Priority:   PriorityMedium,
			DueDate:    "20-11-2024",
			EstValue:   6200000,
		},
		{
			ID:         "2",
			JobRequest: "Update press release for company rebrand",
			Submitted:  "29-10-2024",
			Status:     StatusNeedsToStart,
			Submitter:  "Irfan Khan",
			URL:        "www.irfankhan.com",
			Assigned:   "Tejas Parekh",
			Priority:   PriorityHigh,
			DueDate:    "30-10-2024",
			EstValue:   3400000,
		},
		{
			ID:         "3",
			JobRequest: "Finalize user testing feedback for app",
			Submitted:  "06-12-2024",
			Status:     StatusInProgress,
			Submitter:  "Mark Johnson",
			URL:        "www.markjohnson.com",
			Assigned:   "Rachel Lee",
			Priority:   PriorityMedium,
			DueDate:    "10-12-2024",
			EstValue:   4750000,
		},
		{
			ID:         "4",
			JobRequest: "Design new features for the website",
			Submitted:  "10-01-2025",
			Status:     StatusComplete,
			Submitter:  "Emily Green",
			URL:        "www.emilygreen.com",
			Assigned:   "Tom Wright",
			Priority:   PriorityLow,
			DueDate:    "15-01-2025",
			EstValue:   5900000,
		},
		{
			ID:         "5",
			JobRequest: "Prepare financial report for Q4",
			Submitted:  "25-01-2025",
			Status:     StatusBlocked,
			Submitter:  "Jessica Brown",
			URL:        "www.jessicabrown.com",
			Assigned:   "Kevin Smith",
			Priority:   PriorityLow,
			DueDate:    "30-01-2025",
			EstValue:   2800000,
		},
	}
}
