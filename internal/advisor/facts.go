package advisor

// factSheet is the glossary of crop facts prepended to every prompt.
// It grounds the model in the same EC and DLI ranges the simulation
// scores against, so generated scenarios and feedback stay consistent
// with the built-in catalog.
const factSheet = `
Glossary of Key Facts:
- Lettuce seedling EC: 0.5 – 0.8 mS/cm; vegetative EC: 1.2 – 1.4 mS/cm; mature EC: 1.5 – 2.0 mS/cm.
- Lettuce DLI: 10 – 14 mol/m²/day.
- Tomato seedling EC: 0.8 – 1.2 mS/cm; fruiting EC: 2.0 – 3.0 mS/cm.
- Tomato DLI: 15 – 20 mol/m²/day.
- Cannabis seedling EC: 1.0 – 1.2 mS/cm; vegetative EC: 1.2 – 1.6 mS/cm; flowering EC: 1.6 – 2.0 mS/cm.
- Cannabis DLI: 30 – 40 mol/m²/day.
- Strawberry EC (fruiting): 1.2 – 1.6 mS/cm; Strawberry DLI: 15 – 25 mol/m²/day.
`
