package conditions

// Builtin returns the compiled-in condition rule table. Rules are
// evidence-based; each carries the rationale and the citation shown to the
// user. A conditions file loaded at start may add to or override this table.
func Builtin() []HealthCondition {
	return []HealthCondition{
		{
			ID:          "cancer",
			Name:        "Cancer",
			Icon:        "ribbon",
			Description: "Evidence-based dietary guidance for cancer prevention and management",
			Avoid: []AvoidRule{
				{Keyword: "sodium nitrite", Severity: SeverityCritical, Rationale: "WHO Group 1 carcinogen - forms nitrosamines", Citation: "WHO IARC"},
				{Keyword: "sodium nitrate", Severity: SeverityCritical, Rationale: "Converts to nitrites, linked to increased cancer risk", Citation: "WHO IARC"},
				{Keyword: "partially hydrogenated", Severity: SeverityCritical, Rationale: "Trans fats - banned by FDA, inflammatory", Citation: "FDA"},
				{Keyword: "hydrogenated oil", Severity: SeverityCritical, Rationale: "Trans fats increase cancer and heart disease risk", Citation: "American Heart Association"},
				{Keyword: "soybean oil", Severity: SeverityHigh, Rationale: "High omega-6, promotes inflammation", Citation: "American Cancer Society"},
				{Keyword: "canola oil", Severity: SeverityHigh, Rationale: "Highly processed, inflammatory omega-6", Citation: "American Cancer Society"},
				{Keyword: "corn oil", Severity: SeverityHigh, Rationale: "High omega-6 fatty acids, inflammatory", Citation: "American Cancer Society"},
				{Keyword: "cottonseed oil", Severity: SeverityHigh, Rationale: "Industrial oil, potential pesticide residues", Citation: "American Cancer Society"},
				{Keyword: "vegetable oil", Severity: SeverityHigh, Rationale: "Usually soybean oil, inflammatory", Citation: "American Cancer Society"},
				{Keyword: "bha", Severity: SeverityHigh, Rationale: "Possible carcinogen, oxidative stress", Citation: "National Toxicology Program"},
				{Keyword: "bht", Severity: SeverityHigh, Rationale: "Potential carcinogen, hormone disruptor", Citation: "National Toxicology Program"},
				{Keyword: "tbhq", Severity: SeverityHigh, Rationale: "Linked to tumor development in studies", Citation: "FDA studies"},
				{Keyword: "high fructose corn syrup", Severity: SeverityModerate, Rationale: "Feeds cancer cells, promotes insulin resistance", Citation: "American Cancer Society"},
				{Keyword: "artificial sweetener", Severity: SeverityModerate, Rationale: "Some linked to cancer in animal studies", Citation: "Mixed research - use caution"},
				{Keyword: "aspartame", Severity: SeverityModerate, Rationale: "Possible carcinogen per WHO (Group 2B)", Citation: "WHO IARC 2023"},
				{Keyword: "rapeseed oil", Severity: SeverityModerate, Rationale: "Highly processed seed oil", Citation: "American Cancer Society"},
				{Keyword: "safflower oil", Severity: SeverityModerate, Rationale: "Highly processed seed oil", Citation: "American Cancer Society"},
				{Keyword: "sunflower oil", Severity: SeverityModerate, Rationale: "Highly processed seed oil", Citation: "American Cancer Society"},
				{Keyword: "grapeseed oil", Severity: SeverityModerate, Rationale: "Highly processed seed oil", Citation: "American Cancer Society"},
				{Keyword: "corn syrup", Severity: SeverityModerate, Rationale: "Added sugar feeds cancer cells", Citation: "American Cancer Society"},
				{Keyword: "artificial flavor", Severity: SeverityModerate, Rationale: "Synthetic additive of uncertain safety", Citation: "American Cancer Society"},
				{Keyword: "artificial colour", Severity: SeverityModerate, Rationale: "Synthetic additive of uncertain safety", Citation: "American Cancer Society"},
				{Keyword: "monosodium glutamate", Severity: SeverityModerate, Rationale: "Flavor enhancer of uncertain long-term safety", Citation: "American Cancer Society"},
				{Keyword: "msg", Severity: SeverityModerate, Rationale: "Flavor enhancer of uncertain long-term safety", Citation: "American Cancer Society"},
				{Keyword: "carrageenan", Severity: SeverityModerate, Rationale: "Linked to gut inflammation in studies", Citation: "American Cancer Society"},
			},
			Positive: []PositiveRule{
				{Keyword: "olive oil", Benefit: "Anti-inflammatory, rich in antioxidants"},
				{Keyword: "avocado oil", Benefit: "Healthy fats, anti-cancer properties"},
				{Keyword: "turmeric", Benefit: "Curcumin has anti-cancer effects"},
				{Keyword: "green tea extract", Benefit: "Powerful antioxidants"},
				{Keyword: "garlic", Benefit: "May help prevent certain cancers"},
			},
			NutrientLimits: []NutrientLimit{
				{Nutrient: "sugar_100g", Max: 5, Unit: "g", Label: "Added Sugar", Rationale: "Excess sugar feeds cancer cells"},
				{Nutrient: "sodium_100g", Max: 400, Unit: "mg", Label: "Sodium", Rationale: "High sodium linked to stomach cancer"},
				{Nutrient: "saturated_fat_100g", Max: 3, Unit: "g", Label: "Saturated Fat", Rationale: "Inflammatory, increases risk"},
			},
			Recommendations: []string{
				"Choose organic when possible to reduce pesticide exposure",
				"Eat a rainbow of fruits and vegetables",
				"Limit processed and ultra-processed foods",
				"Choose grass-fed, hormone-free animal products",
				"Avoid charred or heavily grilled meats",
				"Limit alcohol consumption",
			},
			Citations: []string{
				"WHO International Agency for Research on Cancer (IARC)",
				"American Cancer Society Nutrition Guidelines",
				"National Cancer Institute Dietary Recommendations",
			},
		},
		{
			ID:          "diabetes",
			Name:        "Diabetes",
			Icon:        "drop",
			Description: "Evidence-based blood sugar management and glycemic control",
			Avoid: []AvoidRule{
				{Keyword: "high fructose corn syrup", Severity: SeverityCritical, Rationale: "Rapid insulin spike, linked to insulin resistance", Citation: "American Diabetes Association"},
				{Keyword: "maltodextrin", Severity: SeverityCritical, Rationale: "GI of 110 - higher than pure glucose", Citation: "ADA"},
				{Keyword: "dextrose", Severity: SeverityCritical, Rationale: "Pure glucose, immediate blood sugar spike", Citation: "ADA"},
				{Keyword: "corn syrup", Severity: SeverityHigh, Rationale: "Rapidly absorbed, spikes blood sugar", Citation: "ADA"},
				{Keyword: "white flour", Severity: SeverityHigh, Rationale: "High GI, low fiber, rapid glucose release", Citation: "ADA Glycemic Index"},
				{Keyword: "rice syrup", Severity: SeverityHigh, Rationale: "Very high glycemic index", Citation: "ADA"},
				{Keyword: "cane sugar", Severity: SeverityModerate, Rationale: "Raises blood glucose, count as carbs", Citation: "ADA"},
				{Keyword: "honey", Severity: SeverityModerate, Rationale: "Natural but still raises blood sugar", Citation: "ADA"},
				{Keyword: "glucose-fructose", Severity: SeverityModerate, Rationale: "Added sugar raises blood glucose", Citation: "ADA"},
				{Keyword: "sucrose", Severity: SeverityModerate, Rationale: "Added sugar raises blood glucose", Citation: "ADA"},
				{Keyword: "fructose", Severity: SeverityModerate, Rationale: "Added sugar raises blood glucose", Citation: "ADA"},
				{Keyword: "brown sugar", Severity: SeverityModerate, Rationale: "Added sugar raises blood glucose", Citation: "ADA"},
				{Keyword: "agave nectar", Severity: SeverityModerate, Rationale: "Added sugar raises blood glucose", Citation: "ADA"},
				{Keyword: "maple syrup", Severity: SeverityModerate, Rationale: "Added sugar raises blood glucose", Citation: "ADA"},
				{Keyword: "molasses", Severity: SeverityModerate, Rationale: "Added sugar raises blood glucose", Citation: "ADA"},
				{Keyword: "invert sugar", Severity: SeverityModerate, Rationale: "Added sugar raises blood glucose", Citation: "ADA"},
			},
			Positive: []PositiveRule{
				{Keyword: "fiber", Benefit: "Slows glucose absorption, stabilizes blood sugar"},
				{Keyword: "cinnamon", Benefit: "May improve insulin sensitivity"},
				{Keyword: "chia seeds", Benefit: "High fiber, omega-3, stabilizes blood sugar"},
				{Keyword: "vinegar", Benefit: "Lowers post-meal glucose spikes"},
				{Keyword: "nuts", Benefit: "Low GI, healthy fats, minimal glucose impact"},
			},
			NutrientLimits: []NutrientLimit{
				{Nutrient: "sugar_100g", Max: 5, Unit: "g", Label: "Total Sugars", Rationale: "Direct impact on blood glucose"},
				{Nutrient: "carbohydrates_100g", Max: 15, Unit: "g", Label: "Carbohydrates", Rationale: "Converts to glucose"},
				{Nutrient: "sodium_100g", Max: 400, Unit: "mg", Label: "Sodium", Rationale: "Diabetics at higher risk for hypertension"},
			},
			Recommendations: []string{
				"Focus on low glycemic index foods (GI < 55)",
				"Pair carbs with protein or healthy fat to slow absorption",
				"Choose whole grains over refined grains",
				"Read labels carefully - \"sugar-free\" may still have carbs",
				"Avoid \"fat-free\" products (often high in sugar)",
				"Limit fruit juices - opt for whole fruits instead",
			},
			Citations: []string{
				"American Diabetes Association Standards of Care",
				"International Glycemic Index Database",
				"Mayo Clinic Diabetes Nutrition Guidelines",
			},
		},
		{
			ID:          "lactoseIntolerant",
			Name:        "Lactose Intolerance",
			Icon:        "milk",
			Description: "Avoid milk and dairy products containing lactose",
			Avoid: []AvoidRule{
				{Keyword: "lactose", Severity: SeverityCritical, Rationale: "Pure lactose sugar - direct intolerance trigger", Citation: "NIH NIDDK"},
				{Keyword: "milk", Severity: SeverityHigh, Rationale: "Primary lactose source - causes digestive distress", Citation: "NIH - National Institute of Diabetes and Digestive and Kidney Diseases"},
				{Keyword: "whey", Severity: SeverityHigh, Rationale: "Dairy byproduct, high in lactose", Citation: "NIH NIDDK"},
				{Keyword: "milk powder", Severity: SeverityHigh, Rationale: "Concentrated lactose, common hidden ingredient", Citation: "NIH NIDDK"},
				{Keyword: "casein", Severity: SeverityModerate, Rationale: "Milk protein, may contain residual lactose", Citation: "American Gastroenterological Association"},
				{Keyword: "cream", Severity: SeverityModerate, Rationale: "Dairy product containing lactose", Citation: "NIH NIDDK"},
				{Keyword: "butter", Severity: SeverityModerate, Rationale: "Dairy product containing lactose", Citation: "NIH NIDDK"},
				{Keyword: "buttermilk", Severity: SeverityModerate, Rationale: "Dairy product containing lactose", Citation: "NIH NIDDK"},
				{Keyword: "cheese", Severity: SeverityModerate, Rationale: "Dairy product containing lactose", Citation: "NIH NIDDK"},
				{Keyword: "yogurt", Severity: SeverityModerate, Rationale: "Dairy product containing lactose", Citation: "NIH NIDDK"},
				{Keyword: "ice cream", Severity: SeverityModerate, Rationale: "Dairy product containing lactose", Citation: "NIH NIDDK"},
				{Keyword: "milk solids", Severity: SeverityModerate, Rationale: "Dairy derivative containing lactose", Citation: "NIH NIDDK"},
				{Keyword: "dried milk", Severity: SeverityModerate, Rationale: "Dairy derivative containing lactose", Citation: "NIH NIDDK"},
			},
			Positive: []PositiveRule{
				{Keyword: "lactase enzyme", Benefit: "Breaks down lactose, enables dairy consumption"},
				{Keyword: "almond milk", Benefit: "Naturally lactose-free, calcium fortified"},
				{Keyword: "oat milk", Benefit: "Dairy-free alternative with good nutrition"},
				{Keyword: "aged cheese", Benefit: "Lower lactose due to fermentation (parmesan, cheddar)"},
				{Keyword: "probiotic cultures", Benefit: "May improve lactose digestion"},
			},
			Recommendations: []string{
				"Look for \"lactose-free\" certified products",
				"Try plant-based milks (almond, oat, soy, coconut)",
				"Aged hard cheeses often have minimal lactose",
				"Lactase enzyme supplements before dairy consumption",
				"Watch for hidden dairy in baked goods, sauces",
				"\"Non-dairy\" doesn't always mean lactose-free",
			},
			Citations: []string{
				"NIH - National Institute of Diabetes and Digestive and Kidney Diseases",
				"American Gastroenterological Association",
				"Mayo Clinic Lactose Intolerance Guidelines",
			},
		},
		{
			ID:          "celiac",
			Name:        "Celiac / Gluten Sensitivity",
			Icon:        "wheat",
			Description: "Avoid gluten from wheat, barley, and rye",
			Avoid: []AvoidRule{
				{Keyword: "wheat", Severity: SeverityCritical, Rationale: "Contains gluten protein - triggers autoimmune response in celiac disease", Citation: "Celiac Disease Foundation"},
				{Keyword: "barley", Severity: SeverityCritical, Rationale: "Contains hordein gluten protein - damages small intestine", Citation: "Celiac Disease Foundation"},
				{Keyword: "rye", Severity: SeverityCritical, Rationale: "Contains secalin gluten protein - triggers immune reaction", Citation: "Celiac Disease Foundation"},
				{Keyword: "malt", Severity: SeverityHigh, Rationale: "Made from barley, contains gluten, common hidden ingredient", Citation: "FDA Gluten-Free Labeling"},
				{Keyword: "modified food starch", Severity: SeverityHigh, Rationale: "May be wheat-based unless specified otherwise", Citation: "FDA"},
				{Keyword: "enriched flour", Severity: SeverityModerate, Rationale: "Typically wheat-based flour", Citation: "Celiac Disease Foundation"},
				{Keyword: "brewer's yeast", Severity: SeverityModerate, Rationale: "Often a barley brewing byproduct", Citation: "Celiac Disease Foundation"},
				{Keyword: "triticale", Severity: SeverityModerate, Rationale: "Wheat-rye hybrid grain containing gluten", Citation: "Celiac Disease Foundation"},
				{Keyword: "spelt", Severity: SeverityModerate, Rationale: "Ancient wheat variety containing gluten", Citation: "Celiac Disease Foundation"},
				{Keyword: "kamut", Severity: SeverityModerate, Rationale: "Ancient wheat variety containing gluten", Citation: "Celiac Disease Foundation"},
				{Keyword: "farro", Severity: SeverityModerate, Rationale: "Ancient wheat variety containing gluten", Citation: "Celiac Disease Foundation"},
				{Keyword: "durum", Severity: SeverityModerate, Rationale: "Wheat variety containing gluten", Citation: "Celiac Disease Foundation"},
				{Keyword: "semolina", Severity: SeverityModerate, Rationale: "Milled durum wheat containing gluten", Citation: "Celiac Disease Foundation"},
				{Keyword: "bulgur", Severity: SeverityModerate, Rationale: "Cracked wheat containing gluten", Citation: "Celiac Disease Foundation"},
				{Keyword: "couscous", Severity: SeverityModerate, Rationale: "Wheat-based pasta containing gluten", Citation: "Celiac Disease Foundation"},
				{Keyword: "hydrolyzed vegetable protein", Severity: SeverityModerate, Rationale: "May be derived from wheat", Citation: "FDA Gluten-Free Labeling"},
			},
			Positive: []PositiveRule{
				{Keyword: "quinoa", Benefit: "Complete protein, naturally gluten-free grain alternative"},
				{Keyword: "rice", Benefit: "Safe gluten-free staple grain"},
				{Keyword: "corn", Benefit: "Naturally gluten-free, versatile grain"},
				{Keyword: "buckwheat", Benefit: "Despite name, gluten-free and nutrient-rich"},
				{Keyword: "certified gluten-free oats", Benefit: "Safe when processed without cross-contamination"},
			},
			Recommendations: []string{
				"Look for certified gluten-free label (<20ppm gluten)",
				"Check for cross-contamination warnings",
				"Safe grains: rice, quinoa, corn, millet, teff",
				"Read labels - gluten hides in sauces, seasonings",
				"\"Wheat-free\" doesn't mean gluten-free",
				"Oats must be certified gluten-free (cross-contamination risk)",
			},
			Citations: []string{
				"Celiac Disease Foundation",
				"FDA Gluten-Free Labeling Rules",
				"National Celiac Association",
			},
		},
		{
			ID:          "heartDisease",
			Name:        "Heart Disease",
			Icon:        "heart",
			Description: "Low sodium, low saturated fat, avoid trans fats",
			Avoid: []AvoidRule{
				{Keyword: "partially hydrogenated oil", Severity: SeverityCritical, Rationale: "Trans fats raise LDL cholesterol, increase heart disease risk by 29%", Citation: "American Heart Association"},
				{Keyword: "hydrogenated oil", Severity: SeverityCritical, Rationale: "Industrial trans fats - FDA banned due to cardiovascular harm", Citation: "FDA"},
				{Keyword: "palm oil", Severity: SeverityHigh, Rationale: "High saturated fat (50%) - raises LDL cholesterol", Citation: "American Heart Association"},
				{Keyword: "sodium nitrite", Severity: SeverityHigh, Rationale: "Processed meat preservative linked to cardiovascular disease", Citation: "World Health Organization"},
				{Keyword: "lard", Severity: SeverityHigh, Rationale: "Animal fat high in saturated fat and cholesterol", Citation: "AHA Dietary Guidelines"},
				{Keyword: "trans fat", Severity: SeverityModerate, Rationale: "Raises LDL cholesterol", Citation: "American Heart Association"},
				{Keyword: "coconut oil", Severity: SeverityModerate, Rationale: "High in saturated fat", Citation: "American Heart Association"},
				{Keyword: "beef fat", Severity: SeverityModerate, Rationale: "Animal fat high in saturated fat", Citation: "AHA Dietary Guidelines"},
				{Keyword: "pork fat", Severity: SeverityModerate, Rationale: "Animal fat high in saturated fat", Citation: "AHA Dietary Guidelines"},
				{Keyword: "sodium nitrate", Severity: SeverityModerate, Rationale: "Processed meat preservative linked to cardiovascular disease", Citation: "World Health Organization"},
			},
			Positive: []PositiveRule{
				{Keyword: "omega-3", Benefit: "Reduces triglycerides, lowers blood pressure, anti-inflammatory"},
				{Keyword: "olive oil", Benefit: "Monounsaturated fats improve cholesterol ratio"},
				{Keyword: "nuts", Benefit: "Lower LDL cholesterol, improve arterial health"},
				{Keyword: "oats", Benefit: "Beta-glucan fiber reduces LDL cholesterol by 5-10%"},
				{Keyword: "fish", Benefit: "Omega-3 fatty acids protect against heart disease"},
			},
			NutrientLimits: []NutrientLimit{
				{Nutrient: "sodium_100g", Max: 200, Unit: "mg", Label: "Sodium", Rationale: "Excess sodium increases blood pressure and heart strain"},
				{Nutrient: "saturated_fat_100g", Max: 3, Unit: "g", Label: "Saturated Fat", Rationale: "Raises LDL cholesterol, clogs arteries"},
				{Nutrient: "cholesterol_100g", Max: 20, Unit: "mg", Label: "Cholesterol", Rationale: "Contributes to plaque buildup in arteries"},
			},
			Recommendations: []string{
				"Choose lean proteins (fish, poultry without skin)",
				"Use heart-healthy oils (olive, avocado, canola)",
				"Increase omega-3 fatty acids (salmon, walnuts, flax)",
				"Aim for <1500mg sodium daily",
				"Limit processed and fried foods",
				"Avoid red meat and full-fat dairy",
			},
			Citations: []string{
				"American Heart Association Dietary Guidelines",
				"FDA Trans Fat Regulations",
				"World Health Organization Cardiovascular Disease Prevention",
			},
		},
		{
			ID:          "highBloodPressure",
			Name:        "High Blood Pressure",
			Icon:        "gauge",
			Description: "Low sodium, monitor caffeine",
			Avoid: []AvoidRule{
				{Keyword: "salt", Severity: SeverityCritical, Rationale: "Primary sodium source - directly raises blood pressure", Citation: "CDC High Blood Pressure Guidelines"},
				{Keyword: "monosodium glutamate", Severity: SeverityHigh, Rationale: "Contains 12% sodium by weight, hidden salt source", Citation: "American Heart Association"},
				{Keyword: "sodium nitrite", Severity: SeverityHigh, Rationale: "Preservative with high sodium content, linked to hypertension", Citation: "WHO"},
				{Keyword: "sodium benzoate", Severity: SeverityModerate, Rationale: "Preservative adds to daily sodium intake", Citation: "FDA"},
				{Keyword: "baking soda", Severity: SeverityModerate, Rationale: "Sodium bicarbonate - 1/2 tsp = 629mg sodium", Citation: "USDA"},
				{Keyword: "sea salt", Severity: SeverityModerate, Rationale: "Sodium source equivalent to table salt", Citation: "CDC High Blood Pressure Guidelines"},
				{Keyword: "sodium chloride", Severity: SeverityModerate, Rationale: "Chemical name for salt", Citation: "CDC High Blood Pressure Guidelines"},
				{Keyword: "sodium nitrate", Severity: SeverityModerate, Rationale: "Preservative adds to daily sodium intake", Citation: "WHO"},
				{Keyword: "msg", Severity: SeverityModerate, Rationale: "Hidden sodium source", Citation: "American Heart Association"},
			},
			Positive: []PositiveRule{
				{Keyword: "potassium", Benefit: "Balances sodium, relaxes blood vessel walls"},
				{Keyword: "bananas", Benefit: "High potassium (422mg) helps lower blood pressure"},
				{Keyword: "dark leafy greens", Benefit: "Nitrates improve blood flow, lower pressure"},
				{Keyword: "beets", Benefit: "Nitric oxide production dilates blood vessels"},
				{Keyword: "garlic", Benefit: "May lower blood pressure by 5-8 mmHg"},
			},
			NutrientLimits: []NutrientLimit{
				{Nutrient: "sodium_100g", Max: 150, Unit: "mg", Label: "Sodium", Rationale: "Lower sodium reduces blood pressure by 5-6 mmHg"},
				{Nutrient: "saturated_fat_100g", Max: 3, Unit: "g", Label: "Saturated Fat", Rationale: "Saturated fat increases cardiovascular risk"},
			},
			Recommendations: []string{
				"DASH diet - proven to lower blood pressure",
				"Aim for <1500mg sodium daily (1/2 teaspoon salt)",
				"Increase potassium-rich foods (4700mg daily)",
				"Choose fresh over processed foods",
				"Limit alcohol - max 1-2 drinks daily",
				"Avoid canned soups, deli meats, pickles",
			},
			Citations: []string{
				"CDC High Blood Pressure Prevention Guidelines",
				"American Heart Association DASH Diet",
				"National Heart, Lung, and Blood Institute",
			},
		},
		{
			ID:          "generalHealth",
			Name:        "General Healthy Eating",
			Icon:        "salad",
			Description: "Balanced diet, avoid highly processed foods",
			Avoid: []AvoidRule{
				{Keyword: "partially hydrogenated oil", Severity: SeverityCritical, Rationale: "Trans fats banned by FDA - increase disease risk", Citation: "FDA"},
				{Keyword: "high fructose corn syrup", Severity: SeverityHigh, Rationale: "Linked to obesity, metabolic syndrome, liver disease", Citation: "Journal of Clinical Investigation"},
				{Keyword: "artificial colors", Severity: SeverityModerate, Rationale: "Some linked to hyperactivity, allergic reactions", Citation: "European Food Safety Authority"},
				{Keyword: "sodium benzoate", Severity: SeverityModerate, Rationale: "Preservative that may form benzene with vitamin C", Citation: "FDA"},
				{Keyword: "msg", Severity: SeverityModerate, Rationale: "Flavor enhancer - sensitivity in some individuals", Citation: "FDA GRAS Review"},
				{Keyword: "corn syrup", Severity: SeverityModerate, Rationale: "Added sugar linked to metabolic disease", Citation: "Journal of Clinical Investigation"},
				{Keyword: "hydrogenated oil", Severity: SeverityModerate, Rationale: "Source of trans fats", Citation: "FDA"},
				{Keyword: "artificial flavor", Severity: SeverityModerate, Rationale: "Marker of ultra-processed food", Citation: "European Food Safety Authority"},
				{Keyword: "monosodium glutamate", Severity: SeverityModerate, Rationale: "Flavor enhancer - sensitivity in some individuals", Citation: "FDA GRAS Review"},
			},
			Positive: []PositiveRule{
				{Keyword: "whole grains", Benefit: "Fiber, B vitamins, reduce chronic disease risk"},
				{Keyword: "fruits", Benefit: "Antioxidants, vitamins, fiber for overall health"},
				{Keyword: "vegetables", Benefit: "Phytonutrients, low calorie, high nutrient density"},
				{Keyword: "lean protein", Benefit: "Essential amino acids, muscle maintenance"},
				{Keyword: "healthy fats", Benefit: "Omega-3, monounsaturated fats support brain and heart"},
			},
			NutrientLimits: []NutrientLimit{
				{Nutrient: "sugar_100g", Max: 15, Unit: "g", Label: "Sugar", Rationale: "WHO recommends <10% calories from added sugars"},
				{Nutrient: "sodium_100g", Max: 400, Unit: "mg", Label: "Sodium", Rationale: "Excess sodium linked to multiple health risks"},
				{Nutrient: "saturated_fat_100g", Max: 7, Unit: "g", Label: "Saturated Fat", Rationale: "Limit to <10% of daily calories"},
			},
			Recommendations: []string{
				"Choose whole, minimally processed foods",
				"Aim for 5+ servings fruits/vegetables daily",
				"Read ingredient labels - fewer is better",
				"Balance macronutrients: 45-65% carbs, 20-35% fat, 10-35% protein",
				"Avoid ultra-processed foods with long ingredient lists",
				"Limit added sugars to <25g daily (women), <36g (men)",
			},
			Citations: []string{
				"WHO Healthy Diet Guidelines",
				"USDA Dietary Guidelines for Americans",
				"Harvard School of Public Health Nutrition Source",
			},
		},
	}
}
