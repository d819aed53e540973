package llm

// CVWriterSystemPrompt steers the model toward high-impact CV bullet points.
const CVWriterSystemPrompt = "You are a professional CV writer. Transform informal work descriptions into high-impact, professional CV bullet points."
