// Package pool holds the static name pools the game draws from.
//
// The drug list is curated to include brand names that could pass for
// Pokémon, which is the whole joke.
package pool

// Drug is one pharmaceutical record. The pill fields drive the client's
// placeholder art when no product photo is available.
type Drug struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Color       string `json:"color"`
	PillShape   string `json:"pillShape"`
	PillColor   string `json:"pillColor"`
}

// Drugs returns a copy of the drug pool so callers can shuffle freely.
func Drugs() []Drug {
	out := make([]Drug, len(drugs))
	copy(out, drugs)
	return out
}

var drugs = []Drug{
	{Name: "Zoloft", Category: "ANTIDEPRESSANT", Description: "Treats depression, OCD, panic attacks, and PTSD.", Color: "#9B59B6", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Prozac", Category: "ANTIDEPRESSANT", Description: "Treats depression, OCD, and bulimia nervosa.", Color: "#3498DB", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Lexapro", Category: "ANTIDEPRESSANT", Description: "Treats depression and generalized anxiety disorder.", Color: "#2ECC71", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Cymbalta", Category: "ANTIDEPRESSANT", Description: "Treats depression, anxiety, and chronic pain.", Color: "#E74C3C", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Wellbutrin", Category: "ANTIDEPRESSANT", Description: "Treats depression and helps with smoking cessation.", Color: "#F39C12", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Effexor", Category: "ANTIDEPRESSANT", Description: "Treats depression, anxiety, and panic disorder.", Color: "#1ABC9C", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Pristiq", Category: "ANTIDEPRESSANT", Description: "Treats major depressive disorder.", Color: "#E91E63", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Trintellix", Category: "ANTIDEPRESSANT", Description: "Treats major depressive disorder.", Color: "#00BCD4", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Viibryd", Category: "ANTIDEPRESSANT", Description: "Treats major depressive disorder.", Color: "#8BC34A", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Remeron", Category: "ANTIDEPRESSANT", Description: "Treats depression and insomnia.", Color: "#FF5722", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Xanax", Category: "ANTI-ANXIETY", Description: "Treats anxiety and panic disorders.", Color: "#9C27B0", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Valium", Category: "ANTI-ANXIETY", Description: "Treats anxiety, muscle spasms, and seizures.", Color: "#3F51B5", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Klonopin", Category: "ANTI-ANXIETY", Description: "Treats seizure disorders and panic disorder.", Color: "#00BCD4", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Ativan", Category: "ANTI-ANXIETY", Description: "Treats anxiety disorders.", Color: "#009688", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Buspar", Category: "ANTI-ANXIETY", Description: "Treats anxiety disorders.", Color: "#4CAF50", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Librium", Category: "ANTI-ANXIETY", Description: "Treats anxiety and alcohol withdrawal.", Color: "#8BC34A", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Abilify", Category: "ANTIPSYCHOTIC", Description: "Treats schizophrenia, bipolar disorder, and depression.", Color: "#673AB7", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Seroquel", Category: "ANTIPSYCHOTIC", Description: "Treats schizophrenia, bipolar disorder, and depression.", Color: "#9C27B0", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Zyprexa", Category: "ANTIPSYCHOTIC", Description: "Treats schizophrenia and bipolar disorder.", Color: "#E91E63", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Risperdal", Category: "ANTIPSYCHOTIC", Description: "Treats schizophrenia and bipolar disorder.", Color: "#F44336", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Latuda", Category: "ANTIPSYCHOTIC", Description: "Treats schizophrenia and bipolar depression.", Color: "#FF5722", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Vraylar", Category: "ANTIPSYCHOTIC", Description: "Treats schizophrenia and bipolar disorder.", Color: "#FF9800", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Rexulti", Category: "ANTIPSYCHOTIC", Description: "Treats schizophrenia and depression.", Color: "#FFC107", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Geodon", Category: "ANTIPSYCHOTIC", Description: "Treats schizophrenia and bipolar disorder.", Color: "#FFEB3B", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Invega", Category: "ANTIPSYCHOTIC", Description: "Treats schizophrenia.", Color: "#CDDC39", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Clozaril", Category: "ANTIPSYCHOTIC", Description: "Treats severe schizophrenia.", Color: "#8BC34A", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Adderall", Category: "STIMULANT", Description: "Treats ADHD and narcolepsy.", Color: "#FF5722", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Ritalin", Category: "STIMULANT", Description: "Treats ADHD and narcolepsy.", Color: "#FF9800", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Concerta", Category: "STIMULANT", Description: "Treats ADHD.", Color: "#FFC107", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Vyvanse", Category: "STIMULANT", Description: "Treats ADHD and binge eating disorder.", Color: "#FFEB3B", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Focalin", Category: "STIMULANT", Description: "Treats ADHD.", Color: "#CDDC39", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Strattera", Category: "NON-STIMULANT", Description: "Treats ADHD.", Color: "#8BC34A", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Intuniv", Category: "NON-STIMULANT", Description: "Treats ADHD.", Color: "#4CAF50", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Ambien", Category: "SEDATIVE", Description: "Treats insomnia.", Color: "#3F51B5", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Lunesta", Category: "SEDATIVE", Description: "Treats insomnia.", Color: "#673AB7", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Sonata", Category: "SEDATIVE", Description: "Treats insomnia.", Color: "#9C27B0", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Rozerem", Category: "SEDATIVE", Description: "Treats insomnia.", Color: "#E91E63", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Belsomra", Category: "SEDATIVE", Description: "Treats insomnia.", Color: "#F44336", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Dayvigo", Category: "SEDATIVE", Description: "Treats insomnia.", Color: "#FF5722", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Vicodin", Category: "PAIN RELIEVER", Description: "Treats moderate to severe pain.", Color: "#E74C3C", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "OxyContin", Category: "PAIN RELIEVER", Description: "Treats severe chronic pain.", Color: "#C0392B", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Percocet", Category: "PAIN RELIEVER", Description: "Treats moderate to severe pain.", Color: "#9B59B6", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Tramadol", Category: "PAIN RELIEVER", Description: "Treats moderate pain.", Color: "#8E44AD", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Dilaudid", Category: "PAIN RELIEVER", Description: "Treats severe pain.", Color: "#2980B9", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Norco", Category: "PAIN RELIEVER", Description: "Treats moderate to severe pain.", Color: "#1ABC9C", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Ultram", Category: "PAIN RELIEVER", Description: "Treats moderate pain.", Color: "#16A085", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Lipitor", Category: "CHOLESTEROL", Description: "Lowers cholesterol and triglycerides.", Color: "#F39C12", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Crestor", Category: "CHOLESTEROL", Description: "Lowers cholesterol and triglycerides.", Color: "#E67E22", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Zocor", Category: "CHOLESTEROL", Description: "Lowers cholesterol and triglycerides.", Color: "#D35400", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Pravachol", Category: "CHOLESTEROL", Description: "Lowers cholesterol.", Color: "#E74C3C", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Zetia", Category: "CHOLESTEROL", Description: "Lowers cholesterol absorption.", Color: "#C0392B", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Repatha", Category: "CHOLESTEROL", Description: "Lowers LDL cholesterol.", Color: "#9B59B6", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Praluent", Category: "CHOLESTEROL", Description: "Lowers LDL cholesterol.", Color: "#8E44AD", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Lisinopril", Category: "BLOOD PRESSURE", Description: "Treats high blood pressure and heart failure.", Color: "#3498DB", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Losartan", Category: "BLOOD PRESSURE", Description: "Treats high blood pressure.", Color: "#2980B9", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Norvasc", Category: "BLOOD PRESSURE", Description: "Treats high blood pressure and angina.", Color: "#1ABC9C", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Metoprolol", Category: "BLOOD PRESSURE", Description: "Treats high blood pressure and heart failure.", Color: "#16A085", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Diovan", Category: "BLOOD PRESSURE", Description: "Treats high blood pressure.", Color: "#27AE60", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Benicar", Category: "BLOOD PRESSURE", Description: "Treats high blood pressure.", Color: "#2ECC71", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Micardis", Category: "BLOOD PRESSURE", Description: "Treats high blood pressure.", Color: "#F1C40F", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Coreg", Category: "BLOOD PRESSURE", Description: "Treats high blood pressure and heart failure.", Color: "#F39C12", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Ozempic", Category: "DIABETES", Description: "Treats type 2 diabetes and aids weight loss.", Color: "#2ECC71", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Wegovy", Category: "WEIGHT LOSS", Description: "Aids chronic weight management.", Color: "#27AE60", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Metformin", Category: "DIABETES", Description: "Treats type 2 diabetes.", Color: "#16A085", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Jardiance", Category: "DIABETES", Description: "Treats type 2 diabetes.", Color: "#1ABC9C", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Farxiga", Category: "DIABETES", Description: "Treats type 2 diabetes and heart failure.", Color: "#3498DB", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Trulicity", Category: "DIABETES", Description: "Treats type 2 diabetes.", Color: "#2980B9", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Januvia", Category: "DIABETES", Description: "Treats type 2 diabetes.", Color: "#9B59B6", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Invokana", Category: "DIABETES", Description: "Treats type 2 diabetes.", Color: "#8E44AD", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Victoza", Category: "DIABETES", Description: "Treats type 2 diabetes.", Color: "#E74C3C", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Mounjaro", Category: "DIABETES", Description: "Treats type 2 diabetes and aids weight loss.", Color: "#C0392B", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Amoxil", Category: "ANTIBIOTIC", Description: "Treats bacterial infections.", Color: "#E74C3C", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Zithromax", Category: "ANTIBIOTIC", Description: "Treats bacterial infections.", Color: "#C0392B", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Cipro", Category: "ANTIBIOTIC", Description: "Treats bacterial infections.", Color: "#9B59B6", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Augmentin", Category: "ANTIBIOTIC", Description: "Treats bacterial infections.", Color: "#8E44AD", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Keflex", Category: "ANTIBIOTIC", Description: "Treats bacterial infections.", Color: "#2980B9", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Levaquin", Category: "ANTIBIOTIC", Description: "Treats bacterial infections.", Color: "#3498DB", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Bactrim", Category: "ANTIBIOTIC", Description: "Treats bacterial infections.", Color: "#1ABC9C", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Flagyl", Category: "ANTIBIOTIC", Description: "Treats bacterial and parasitic infections.", Color: "#16A085", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Zyrtec", Category: "ANTIHISTAMINE", Description: "Treats allergies.", Color: "#3498DB", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Allegra", Category: "ANTIHISTAMINE", Description: "Treats allergies.", Color: "#2980B9", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Claritin", Category: "ANTIHISTAMINE", Description: "Treats allergies.", Color: "#1ABC9C", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Singulair", Category: "RESPIRATORY", Description: "Treats asthma and allergies.", Color: "#16A085", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Flonase", Category: "NASAL SPRAY", Description: "Treats nasal allergies.", Color: "#27AE60", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Nasonex", Category: "NASAL SPRAY", Description: "Treats nasal allergies.", Color: "#2ECC71", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Advair", Category: "RESPIRATORY", Description: "Treats asthma and COPD.", Color: "#F1C40F", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Symbicort", Category: "RESPIRATORY", Description: "Treats asthma and COPD.", Color: "#F39C12", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Spiriva", Category: "RESPIRATORY", Description: "Treats COPD.", Color: "#E67E22", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Breo", Category: "RESPIRATORY", Description: "Treats asthma and COPD.", Color: "#D35400", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Nexium", Category: "ACID REDUCER", Description: "Treats heartburn, GERD, and ulcers.", Color: "#9B59B6", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Prilosec", Category: "ACID REDUCER", Description: "Treats heartburn, GERD, and ulcers.", Color: "#8E44AD", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Prevacid", Category: "ACID REDUCER", Description: "Treats heartburn, GERD, and ulcers.", Color: "#673AB7", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Protonix", Category: "ACID REDUCER", Description: "Treats heartburn, GERD, and ulcers.", Color: "#3F51B5", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Zantac", Category: "ACID REDUCER", Description: "Treats heartburn and ulcers.", Color: "#2196F3", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Pepcid", Category: "ACID REDUCER", Description: "Treats heartburn and ulcers.", Color: "#03A9F4", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Linzess", Category: "GI MEDICATION", Description: "Treats IBS with constipation.", Color: "#00BCD4", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Humira", Category: "BIOLOGIC", Description: "Treats autoimmune diseases like arthritis.", Color: "#E91E63", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Enbrel", Category: "BIOLOGIC", Description: "Treats autoimmune diseases.", Color: "#F44336", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Remicade", Category: "BIOLOGIC", Description: "Treats autoimmune diseases.", Color: "#FF5722", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Stelara", Category: "BIOLOGIC", Description: "Treats psoriasis and Crohn's disease.", Color: "#FF9800", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Cosentyx", Category: "BIOLOGIC", Description: "Treats psoriasis and arthritis.", Color: "#FFC107", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Dupixent", Category: "BIOLOGIC", Description: "Treats eczema and asthma.", Color: "#FFEB3B", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Skyrizi", Category: "BIOLOGIC", Description: "Treats psoriasis.", Color: "#CDDC39", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Rinvoq", Category: "BIOLOGIC", Description: "Treats rheumatoid arthritis.", Color: "#8BC34A", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Tremfya", Category: "BIOLOGIC", Description: "Treats psoriasis.", Color: "#4CAF50", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Taltz", Category: "BIOLOGIC", Description: "Treats psoriasis and arthritis.", Color: "#009688", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Keytruda", Category: "ONCOLOGY", Description: "Cancer immunotherapy.", Color: "#E74C3C", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Opdivo", Category: "ONCOLOGY", Description: "Cancer immunotherapy.", Color: "#C0392B", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Rituxan", Category: "ONCOLOGY", Description: "Treats certain cancers.", Color: "#9B59B6", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Herceptin", Category: "ONCOLOGY", Description: "Treats breast and stomach cancer.", Color: "#8E44AD", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Avastin", Category: "ONCOLOGY", Description: "Treats various cancers.", Color: "#2980B9", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Revlimid", Category: "ONCOLOGY", Description: "Treats multiple myeloma.", Color: "#3498DB", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Ibrance", Category: "ONCOLOGY", Description: "Treats breast cancer.", Color: "#1ABC9C", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Imbruvica", Category: "ONCOLOGY", Description: "Treats blood cancers.", Color: "#16A085", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Tagrisso", Category: "ONCOLOGY", Description: "Treats lung cancer.", Color: "#27AE60", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Darzalex", Category: "ONCOLOGY", Description: "Treats multiple myeloma.", Color: "#2ECC71", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Eliquis", Category: "ANTICOAGULANT", Description: "Prevents blood clots.", Color: "#E74C3C", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Xarelto", Category: "ANTICOAGULANT", Description: "Prevents blood clots.", Color: "#C0392B", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Pradaxa", Category: "ANTICOAGULANT", Description: "Prevents blood clots.", Color: "#9B59B6", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Coumadin", Category: "ANTICOAGULANT", Description: "Prevents blood clots.", Color: "#8E44AD", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Plavix", Category: "ANTIPLATELET", Description: "Prevents heart attack and stroke.", Color: "#2980B9", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Brilinta", Category: "ANTIPLATELET", Description: "Prevents blood clots.", Color: "#3498DB", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Topamax", Category: "ANTICONVULSANT", Description: "Treats seizures and migraines.", Color: "#9C27B0", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Lamictal", Category: "ANTICONVULSANT", Description: "Treats seizures and bipolar disorder.", Color: "#673AB7", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Keppra", Category: "ANTICONVULSANT", Description: "Treats seizures.", Color: "#3F51B5", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Depakote", Category: "ANTICONVULSANT", Description: "Treats seizures and bipolar disorder.", Color: "#2196F3", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Tegretol", Category: "ANTICONVULSANT", Description: "Treats seizures and nerve pain.", Color: "#03A9F4", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Dilantin", Category: "ANTICONVULSANT", Description: "Treats seizures.", Color: "#00BCD4", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Lyrica", Category: "ANTICONVULSANT", Description: "Treats nerve pain and fibromyalgia.", Color: "#009688", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Gabapentin", Category: "ANTICONVULSANT", Description: "Treats seizures and nerve pain.", Color: "#4CAF50", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Flexeril", Category: "MUSCLE RELAXANT", Description: "Treats muscle spasms.", Color: "#FF5722", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Soma", Category: "MUSCLE RELAXANT", Description: "Treats muscle spasms.", Color: "#FF9800", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Zanaflex", Category: "MUSCLE RELAXANT", Description: "Treats muscle spasms.", Color: "#FFC107", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Baclofen", Category: "MUSCLE RELAXANT", Description: "Treats muscle spasms.", Color: "#FFEB3B", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Robaxin", Category: "MUSCLE RELAXANT", Description: "Treats muscle spasms.", Color: "#CDDC39", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Synthroid", Category: "THYROID", Description: "Treats hypothyroidism.", Color: "#3498DB", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Levoxyl", Category: "THYROID", Description: "Treats hypothyroidism.", Color: "#2980B9", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Armour", Category: "THYROID", Description: "Treats hypothyroidism.", Color: "#1ABC9C", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Cytomel", Category: "THYROID", Description: "Treats hypothyroidism.", Color: "#16A085", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Imitrex", Category: "MIGRAINE", Description: "Treats migraine headaches.", Color: "#E74C3C", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Maxalt", Category: "MIGRAINE", Description: "Treats migraine headaches.", Color: "#C0392B", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Zomig", Category: "MIGRAINE", Description: "Treats migraine headaches.", Color: "#9B59B6", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Relpax", Category: "MIGRAINE", Description: "Treats migraine headaches.", Color: "#8E44AD", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Aimovig", Category: "MIGRAINE", Description: "Prevents migraine headaches.", Color: "#2980B9", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Ajovy", Category: "MIGRAINE", Description: "Prevents migraine headaches.", Color: "#3498DB", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Emgality", Category: "MIGRAINE", Description: "Prevents migraine headaches.", Color: "#1ABC9C", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Nurtec", Category: "MIGRAINE", Description: "Treats and prevents migraines.", Color: "#16A085", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Ubrelvy", Category: "MIGRAINE", Description: "Treats acute migraines.", Color: "#27AE60", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Viagra", Category: "UROLOGICAL", Description: "Treats erectile dysfunction.", Color: "#3498DB", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Cialis", Category: "UROLOGICAL", Description: "Treats erectile dysfunction.", Color: "#2980B9", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Levitra", Category: "UROLOGICAL", Description: "Treats erectile dysfunction.", Color: "#1ABC9C", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Stendra", Category: "UROLOGICAL", Description: "Treats erectile dysfunction.", Color: "#16A085", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Fosamax", Category: "BONE HEALTH", Description: "Treats osteoporosis.", Color: "#F1C40F", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Boniva", Category: "BONE HEALTH", Description: "Treats osteoporosis.", Color: "#F39C12", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Prolia", Category: "BONE HEALTH", Description: "Treats osteoporosis.", Color: "#E67E22", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Evenity", Category: "BONE HEALTH", Description: "Treats osteoporosis.", Color: "#D35400", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Yaz", Category: "CONTRACEPTIVE", Description: "Birth control pill.", Color: "#E91E63", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Ortho", Category: "CONTRACEPTIVE", Description: "Birth control pill.", Color: "#F44336", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Mirena", Category: "CONTRACEPTIVE", Description: "IUD birth control.", Color: "#FF5722", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Nexplanon", Category: "CONTRACEPTIVE", Description: "Implant birth control.", Color: "#FF9800", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Suboxone", Category: "ADDICTION", Description: "Treats opioid dependence.", Color: "#E74C3C", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Vivitrol", Category: "ADDICTION", Description: "Treats alcohol and opioid dependence.", Color: "#C0392B", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Narcan", Category: "OVERDOSE", Description: "Reverses opioid overdose.", Color: "#9B59B6", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Truvada", Category: "HIV", Description: "Treats and prevents HIV.", Color: "#3498DB", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Descovy", Category: "HIV", Description: "Treats and prevents HIV.", Color: "#2980B9", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Biktarvy", Category: "HIV", Description: "Treats HIV.", Color: "#1ABC9C", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Genvoya", Category: "HIV", Description: "Treats HIV.", Color: "#16A085", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Harvoni", Category: "HEPATITIS", Description: "Treats hepatitis C.", Color: "#F39C12", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Sovaldi", Category: "HEPATITIS", Description: "Treats hepatitis C.", Color: "#E67E22", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Epclusa", Category: "HEPATITIS", Description: "Treats hepatitis C.", Color: "#D35400", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Mavyret", Category: "HEPATITIS", Description: "Treats hepatitis C.", Color: "#E74C3C", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Tecfidera", Category: "MS", Description: "Treats multiple sclerosis.", Color: "#9C27B0", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Ocrevus", Category: "MS", Description: "Treats multiple sclerosis.", Color: "#673AB7", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Tysabri", Category: "MS", Description: "Treats multiple sclerosis.", Color: "#3F51B5", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Gilenya", Category: "MS", Description: "Treats multiple sclerosis.", Color: "#2196F3", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Aubagio", Category: "MS", Description: "Treats multiple sclerosis.", Color: "#03A9F4", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Kesimpta", Category: "MS", Description: "Treats multiple sclerosis.", Color: "#00BCD4", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Restasis", Category: "EYE CARE", Description: "Treats chronic dry eye.", Color: "#3498DB", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Xiidra", Category: "EYE CARE", Description: "Treats dry eye disease.", Color: "#2980B9", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Lumigan", Category: "EYE CARE", Description: "Treats glaucoma.", Color: "#1ABC9C", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Xalatan", Category: "EYE CARE", Description: "Treats glaucoma.", Color: "#16A085", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Otezla", Category: "DERMATOLOGY", Description: "Treats psoriasis and psoriatic arthritis.", Color: "#FF5722", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Eucrisa", Category: "DERMATOLOGY", Description: "Treats eczema.", Color: "#FF9800", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Epiduo", Category: "DERMATOLOGY", Description: "Treats acne.", Color: "#FFC107", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Differin", Category: "DERMATOLOGY", Description: "Treats acne.", Color: "#FFEB3B", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Provigil", Category: "WAKEFULNESS", Description: "Treats narcolepsy and sleep apnea.", Color: "#F39C12", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Nuvigil", Category: "WAKEFULNESS", Description: "Treats narcolepsy and sleep apnea.", Color: "#E67E22", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Xyrem", Category: "NARCOLEPSY", Description: "Treats narcolepsy with cataplexy.", Color: "#D35400", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Entresto", Category: "HEART FAILURE", Description: "Treats chronic heart failure.", Color: "#E74C3C", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Verzenio", Category: "ONCOLOGY", Description: "Treats breast cancer.", Color: "#9B59B6", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Kisqali", Category: "ONCOLOGY", Description: "Treats breast cancer.", Color: "#8E44AD", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Xeljanz", Category: "IMMUNOLOGY", Description: "Treats rheumatoid arthritis.", Color: "#2980B9", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Olumiant", Category: "IMMUNOLOGY", Description: "Treats rheumatoid arthritis.", Color: "#3498DB", PillShape: "round", PillColor: "#FFFFFF"},
	{Name: "Orencia", Category: "IMMUNOLOGY", Description: "Treats rheumatoid arthritis.", Color: "#1ABC9C", PillShape: "oval", PillColor: "#FFFFFF"},
	{Name: "Actemra", Category: "IMMUNOLOGY", Description: "Treats rheumatoid arthritis.", Color: "#16A085", PillShape: "diamond", PillColor: "#FFFFFF"},
	{Name: "Simponi", Category: "IMMUNOLOGY", Description: "Treats autoimmune diseases.", Color: "#27AE60", PillShape: "capsule", PillColor: "#FFFFFF"},
	{Name: "Cimzia", Category: "IMMUNOLOGY", Description: "Treats autoimmune diseases.", Color: "#2ECC71", PillShape: "round", PillColor: "#FFFFFF"},
}
