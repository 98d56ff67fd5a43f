// Package questionset holds the static questionnaire definitions for each
// contract category. Data only; lookup falls back to the default set for
// unrecognized categories.
package questionset

import "lexdraft/internal/model"

// DefaultCategory is used when a requested category has no dedicated set
const DefaultCategory = "custom"

var contractTypes = []model.ContractType{
	{Key: "nda", Label: "Non-Disclosure Agreement (NDA)"},
	{Key: "employment", Label: "Employment Agreement"},
	{Key: "consulting", Label: "Consulting Agreement"},
	{Key: "saas", Label: "SaaS Agreement"},
	{Key: "service", Label: "Service Agreement"},
	{Key: "partnership", Label: "Partnership Agreement"},
	{Key: "custom", Label: "Custom Contract"},
}

var governingStates = []string{"California", "New York", "Delaware", "Texas", "Florida"}

var sets = map[string][]model.Question{
	"nda": {
		{ID: "company-name", Prompt: "What is your company name?", Description: "Please enter the full legal name of your company", Kind: model.InputShortText, Required: true},
		{ID: "counterparty", Prompt: "Who is the other party to this NDA?", Kind: model.InputShortText, Required: true},
		{ID: "state", Prompt: "Which state's law will govern this agreement?", Kind: model.InputSingleChoice, Choices: governingStates, Required: true},
		{ID: "term", Prompt: "How long should the confidentiality obligations last?", Kind: model.InputSingleChoice, Choices: []string{"1 year", "2 years", "3 years", "5 years", "Perpetual"}, Required: true},
		{ID: "mutual", Prompt: "Is this a mutual (both parties share confidential information) or one-way NDA?", Kind: model.InputSingleChoice, Choices: []string{"Mutual", "One-way (we disclose)", "One-way (they disclose)"}, Required: true},
		{ID: "confidential-info", Prompt: "What type of confidential information will be shared?", Description: "Select everything that applies", Kind: model.InputMultiChoice, Choices: []string{"Business plans", "Technical data", "Financial information", "Product designs", "Customer lists", "Other"}, Required: true},
		{ID: "purpose", Prompt: "What is the purpose of sharing confidential information?", Kind: model.InputLongText, Required: true},
		{ID: "additional-terms", Prompt: "Are there any additional terms you would like to include?", Description: "Add any specific terms or clauses you need", Kind: model.InputLongText, Required: false},
	},
	"employment": {
		{ID: "company-name", Prompt: "What is your company name?", Description: "Please enter the full legal name of your company", Kind: model.InputShortText, Required: true},
		{ID: "employee-name", Prompt: "What is the employee's name?", Kind: model.InputShortText, Required: true},
		{ID: "position", Prompt: "What position will the employee hold?", Kind: model.InputShortText, Required: true},
		{ID: "start-date", Prompt: "What is the start date of employment?", Kind: model.InputShortText, Required: true},
		{ID: "compensation", Prompt: "What is the compensation structure? (e.g., $X per year, equity details)", Kind: model.InputLongText, Required: true},
		{ID: "state", Prompt: "Which state will the employee be based in?", Kind: model.InputSingleChoice, Choices: governingStates, Required: true},
		{ID: "at-will", Prompt: "Should this be an \"at-will\" employment relationship?", Kind: model.InputSingleChoice, Choices: []string{"Yes", "No"}, Required: true},
		{ID: "ip-assignment", Prompt: "Do you want to include intellectual property assignment provisions?", Kind: model.InputSingleChoice, Choices: []string{"Yes", "No"}, Required: true},
	},
	"consulting": {
		{ID: "company-name", Prompt: "What is your company name?", Kind: model.InputShortText, Required: true},
		{ID: "consultant-name", Prompt: "What is the consultant's name or company?", Kind: model.InputShortText, Required: true},
		{ID: "services", Prompt: "Describe the consulting services to be provided:", Kind: model.InputLongText, Required: true},
		{ID: "term", Prompt: "What is the duration of the consulting agreement?", Kind: model.InputSingleChoice, Choices: []string{"Month-to-month", "3 months", "6 months", "1 year", "Project-based"}, Required: true},
		{ID: "payment", Prompt: "What are the payment terms? (e.g., hourly rate, fixed fee, milestones)", Kind: model.InputLongText, Required: true},
		{ID: "ip-ownership", Prompt: "Who will own intellectual property created during the engagement?", Kind: model.InputSingleChoice, Choices: []string{"Company owns all IP", "Consultant owns all IP", "Company licenses IP"}, Required: true},
	},
	"saas": {
		{ID: "company-name", Prompt: "What is your company name?", Kind: model.InputShortText, Required: true},
		{ID: "customer-name", Prompt: "What is the customer's name?", Kind: model.InputShortText, Required: true},
		{ID: "service-description", Prompt: "Describe your SaaS service:", Kind: model.InputLongText, Required: true},
		{ID: "subscription-model", Prompt: "What is your subscription model?", Kind: model.InputSingleChoice, Choices: []string{"Monthly", "Annual", "Pay-as-you-go", "Custom"}, Required: true},
		{ID: "term", Prompt: "What is the initial term of the agreement?", Kind: model.InputSingleChoice, Choices: []string{"Month-to-month", "1 year", "2 years", "3 years", "Custom"}, Required: true},
		{ID: "sla", Prompt: "Do you want to include a Service Level Agreement (SLA)?", Kind: model.InputSingleChoice, Choices: []string{"Yes", "No"}, Required: true},
		{ID: "data-processing", Prompt: "Will you be processing personal data under this agreement?", Kind: model.InputSingleChoice, Choices: []string{"Yes", "No"}, Required: true},
	},
	"service": {
		{ID: "company-name", Prompt: "What is your company name?", Kind: model.InputShortText, Required: true},
		{ID: "client-name", Prompt: "What is the client's name?", Kind: model.InputShortText, Required: true},
		{ID: "service-description", Prompt: "Describe the services to be provided:", Kind: model.InputLongText, Required: true},
		{ID: "service-duration", Prompt: "What is the duration of the service agreement?", Kind: model.InputSingleChoice, Choices: []string{"One-time project", "3 months", "6 months", "1 year", "Ongoing"}, Required: true},
		{ID: "payment-terms", Prompt: "What are the payment terms?", Kind: model.InputLongText, Required: true},
		{ID: "termination", Prompt: "How can the agreement be terminated?", Kind: model.InputSingleChoice, Choices: []string{"With 30 days notice", "With 60 days notice", "Upon project completion", "Custom"}, Required: true},
		{ID: "state", Prompt: "Which state's law will govern this agreement?", Kind: model.InputSingleChoice, Choices: governingStates, Required: true},
	},
	"partnership": {
		{ID: "partnership-name", Prompt: "What is the name of the partnership?", Kind: model.InputShortText, Required: true},
		{ID: "partners", Prompt: "List all partners (individuals or entities):", Kind: model.InputLongText, Required: true},
		{ID: "purpose", Prompt: "What is the purpose of the partnership?", Kind: model.InputLongText, Required: true},
		{ID: "contributions", Prompt: "Describe the capital/resource contributions of each partner:", Kind: model.InputLongText, Required: true},
		{ID: "profit-sharing", Prompt: "How will profits and losses be divided?", Kind: model.InputLongText, Required: true},
		{ID: "state", Prompt: "Which state's law will govern this agreement?", Kind: model.InputSingleChoice, Choices: governingStates, Required: true},
		{ID: "duration", Prompt: "What is the expected duration of the partnership?", Kind: model.InputSingleChoice, Choices: []string{"Indefinite", "1 year", "2 years", "5 years", "Upon completion of a project"}, Required: true},
	},
	"custom": {
		{ID: "company-name", Prompt: "What is your company name?", Description: "Please enter the full legal name of your company", Kind: model.InputShortText, Required: true},
		{ID: "contract-purpose", Prompt: "What is the purpose of this contract?", Description: "Describe what this contract should accomplish", Kind: model.InputLongText, Required: true},
		{ID: "parties-involved", Prompt: "Who are the parties involved?", Description: "List all companies or individuals who will sign this contract", Kind: model.InputLongText, Required: true},
		{ID: "key-terms", Prompt: "What are the key terms you want to include?", Description: "List the most important provisions this contract should contain", Kind: model.InputLongText, Required: true},
		{ID: "duration", Prompt: "How long should this contract be in effect?", Kind: model.InputShortText, Required: true},
		{ID: "governing-law", Prompt: "Which state law should govern this contract?", Kind: model.InputShortText, Required: true},
	},
}

// Categories returns the selectable contract types in display order
func Categories() []model.ContractType {
	out := make([]model.ContractType, len(contractTypes))
	copy(out, contractTypes)
	return out
}

// Label returns the display label for a category key, or the key itself
func Label(key string) string {
	for _, t := range contractTypes {
		if t.Key == key {
			return t.Label
		}
	}
	return key
}

// Resolve returns the question set for a category. Unknown keys resolve
// to the default set, never an error.
func Resolve(key string) model.QuestionSet {
	if qs, ok := sets[key]; ok {
		return model.QuestionSet{Category: key, Questions: qs}
	}
	return model.QuestionSet{Category: DefaultCategory, Questions: sets[DefaultCategory]}
}
