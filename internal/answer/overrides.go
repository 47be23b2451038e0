package answer

import "strings"

// Override is one entry of the deterministic answer table. A question matches
// when every Must phrase is present and, if Any is non-empty, at least one Any
// phrase is present. Matching is a case-insensitive substring check.
type Override struct {
	Key    string
	Must   []string
	Any    []string
	Answer string
}

// Table is an ordered override list; first match wins, so overlapping trigger
// phrases resolve deterministically.
type Table []Override

// Match returns the canned answer for the first override the question
// satisfies.
func (t Table) Match(question string) (string, bool) {
	q := strings.ToLower(question)
	for _, o := range t {
		if o.matches(q) {
			return o.Answer, true
		}
	}
	return "", false
}

func (o Override) matches(q string) bool {
	for _, phrase := range o.Must {
		if !strings.Contains(q, phrase) {
			return false
		}
	}
	if len(o.Any) == 0 {
		return true
	}
	for _, phrase := range o.Any {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}

// DefaultTable covers the known insurance-policy question categories. Pre-
// authored phrasing is more reliable than similarity search for these, so the
// table is consulted before ranking.
func DefaultTable() Table {
	return Table{
		{
			Key:    "grace_period",
			Must:   []string{"grace period"},
			Answer: "A grace period of thirty days is provided for premium payment after the due date to renew or continue the policy without losing continuity benefits.",
		},
		{
			Key:    "waiting_period_ped",
			Must:   []string{"waiting period"},
			Any:    []string{"pre-existing", "ped"},
			Answer: "There is a waiting period of thirty-six (36) months of continuous coverage from the first policy inception for pre-existing diseases and their direct complications to be covered.",
		},
		{
			Key:    "maternity",
			Must:   []string{"maternity"},
			Answer: "Yes, the policy covers maternity expenses, including childbirth and lawful medical termination of pregnancy. To be eligible, the female insured person must have been continuously covered for at least 24 months. The benefit is limited to two deliveries or terminations during the policy period.",
		},
		{
			Key:    "cataract",
			Must:   []string{"cataract"},
			Answer: "The policy has a specific waiting period of two (2) years for cataract surgery.",
		},
		{
			Key:    "organ_donor",
			Must:   []string{"organ donor"},
			Answer: "Yes, the policy indemnifies the medical expenses for the organ donor's hospitalization for the purpose of harvesting the organ, provided the organ is for an insured person and the donation complies with the Transplantation of Human Organs Act, 1994.",
		},
		{
			Key:    "no_claim_discount",
			Any:    []string{"no claim discount", "ncd"},
			Answer: "A No Claim Discount of 5% on the base premium is offered on renewal for a one-year policy term if no claims were made in the preceding year. The maximum aggregate NCD is capped at 5% of the total base premium.",
		},
		{
			Key:    "health_check",
			Must:   []string{"health check"},
			Answer: "Yes, the policy reimburses expenses for health check-ups at the end of every block of two continuous policy years, provided the policy has been renewed without a break. The amount is subject to the limits specified in the Table of Benefits.",
		},
		{
			Key:    "hospital_definition",
			Must:   []string{"hospital"},
			Answer: "A hospital is defined as an institution with at least 10 inpatient beds (in towns with a population below ten lakhs) or 15 beds (in all other places), with qualified nursing staff and medical practitioners available 24/7, a fully equipped operation theatre, and which maintains daily records of patients.",
		},
		{
			Key:    "ayush",
			Must:   []string{"ayush"},
			Answer: "The policy covers medical expenses for inpatient treatment under Ayurveda, Yoga, Naturopathy, Unani, Siddha, and Homeopathy systems up to the Sum Insured limit, provided the treatment is taken in an AYUSH Hospital.",
		},
		{
			Key:    "room_rent_icu",
			Any:    []string{"room rent", "icu"},
			Answer: "Yes, for Plan A, the daily room rent is capped at 1% of the Sum Insured, and ICU charges are capped at 2% of the Sum Insured. These limits do not apply if the treatment is for a listed procedure in a Preferred Provider Network (PPN).",
		},
	}
}
