package intent

// Fixed user-facing responses.
const (
	ClarifyMessage  = "I'm sorry, I didn't understand that. Could you please rephrase?"
	FallbackMessage = "I'm sorry, I don't know the answer to that."

	ShakespeareAnswer = "William Shakespeare (26 April 1564 - 23 April 1616) was an " +
		"English poet, playwright, and actor, widely regarded as the greatest " +
		"writer in the English language and the world's pre-eminent dramatist."
	DefaultName = "Team12"

	DivideByZeroMessage      = "Cannot divide by zero."
	InvalidArithmeticMessage = "Invalid numbers provided for arithmetic."

	InvalidNumberMessage   = "One of the provided numbers is invalid."
	EmptyComparisonMessage = "No valid numbers were provided for comparison."
	EmptyPrimeMessage      = "No valid numbers were provided for prime checking."
	NoPrimesMessage        = "None of the provided numbers are prime."
	NoSquareCubesMessage   = "None of the provided numbers are both squares and cubes."

	NegativeExponentMessage = "Negative exponents are not supported."
	InvalidPowerMessage     = "Invalid numbers provided for exponentiation."
	PowerFailedMessage      = "Error during exponentiation calculation."
)
