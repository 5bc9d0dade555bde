package expressions

var library = []Entry{
	// mathematical functions
	{MathematicalFunctions, "abs (x)", "Returns the absolute value of the floating-point number x.", ""},
	{MathematicalFunctions, "acos (x)", "Calculates the arc cosine of x; that is the value whose cosine is x.", ""},
	{MathematicalFunctions, "asin (x)", "Calculates the arc sine of x; that is the value whose sine is x.", ""},
	{MathematicalFunctions, "atan (x)", "Calculates the arc tangent of x; that is the value whose tangent is x.The return value is between -PI/2 and PI/2.", ""},
	{MathematicalFunctions, "atan2 (x, y)", "Calculates the arc tangent of the two variables x and y. This function is useful to calculate the angle between two vectors.", ""},
	{MathematicalFunctions, "ceil (x)", "Round x up to the nearest integer.", ""},
	{MathematicalFunctions, "clamp (x, min, max)", "Return x clamped to [min ... max].", ""},
	{MathematicalFunctions, "cos (x)", "Returns the cosine of x.", ""},
	{MathematicalFunctions, "cosh (x)", "Returns the hyperbolic cosine of x, which is defined mathematically as (exp(x) + exp(-x)) / 2.", ""},
	{MathematicalFunctions, "curve (frame)", "Returns the y value of the animation curve at the given frame.", ""},
	{MathematicalFunctions, "degrees (x)", "Convert the angle x from radians into degrees.", ""},
	{MathematicalFunctions, "exp (x)", "Returns the value of e (the base of natural logarithms) raised to the power of x.", ""},
	{MathematicalFunctions, "exponent (x)", "Exponent of x.", ""},
	{MathematicalFunctions, "fBm (x, y, z, octaves, lacunarity, gain)", "Fractional Brownian Motion. This is the sum of octaves calls to noise(). For each of them the input point is multiplied by pow(lacunarity,i) and the result is multiplied by pow(gain,i). For normal use, lacunarity should be greater than 1 and gain should be less than 1.", ""},
	{MathematicalFunctions, "fabs (x)", "Returns the absolute value of the floating-point number x.", ""},
	{MathematicalFunctions, "false ()", "Always returns 0", ""},
	{MathematicalFunctions, "floor (x)", "Round x down to the nearest integer.", ""},
	{MathematicalFunctions, "fmod (x, y)", "Computes the remainder of dividing x by y. The return value is x - n y, where n is the quotient of x / y, rounded towards zero to an integer.", ""},
	{MathematicalFunctions, "frame ()", "Return the current frame number.", ""},
	{MathematicalFunctions, "from_byte (color component)", "Converts an sRGB pixel value to a linear value.", ""},
	{MathematicalFunctions, "from_rec709f (color component)", "Converts a rec709 byte value to a linear brightness", ""},
	{MathematicalFunctions, "from_sRGB (color component)", "Converts an sRGB pixel value to a linear value.", ""},
	{MathematicalFunctions, "hypot (x, y)", "Returns the sqrt(x*x + y*y). This is the length of the hypotenuse of a right-angle triangle with sides of length x and y.", ""},
	{MathematicalFunctions, "int (x)", "Round x to the nearest integer not larger in absolute value.", ""},
	{MathematicalFunctions, "ldexp (x)", "Returns the result of multiplying the floating-point number x by 2 raised to the power exp.", ""},
	{MathematicalFunctions, "lerp (a, b, x)", "Returns a point on the line f(x) where f(0)==a and f(1)==b. Matches the lerp function in other shading languages.", ""},
	{MathematicalFunctions, "log (x)", "Returns the natural logarithm of x.", ""},
	{MathematicalFunctions, "log10 (x)", "Returns the base-10 logarithm of x.", ""},
	{MathematicalFunctions, "logb (x)", "Same as exponent().", ""},
	{MathematicalFunctions, "mantissa (x)", "Returns the normalized fraction. If the argument x is not zero, the normalized fraction is x times a power of two, and is always in the range 1/2 (inclusive) to 1 (exclusive). If x is zero, then the normalized fraction is zero and exponent() Returns zero.", ""},
	{MathematicalFunctions, "max (x, y, ... )", "Return the greatest of all values.", ""},
	{MathematicalFunctions, "min (x, y, ... )", "Return the smallest of all values.", ""},
	{MathematicalFunctions, "mix (a, b, x)", "Same as lerp().", ""},
	{MathematicalFunctions, "noise (x, y, z)", "Creates a 3D Perlin noise value. This produces a signed range centerd on zero. The absolute maximum range is from -1.0 to 1.0. This produces zero at all integers, so you should rotate the coordinates somewhat (add a fraction of y and z to x, etc.) if you want to use this for random number generation.", ""},
	{MathematicalFunctions, "pi ()", "Returns the value for pi (3.141592654...).", ""},
	{MathematicalFunctions, "pow (x, y)", "Returns the value of x raised to the power of y.", ""},
	{MathematicalFunctions, "pow2 (x)", "Returns the value of x raised to the power of 2.", ""},
	{MathematicalFunctions, "radians (x)", "Convert the angle x from degrees into radians.", ""},
	{MathematicalFunctions, "random (x, y, z)", "Creates a pseudo random value between 0 and 1. It always generates the same value for the same x, y and z. Calling random with no arguments creates a different value on every invocation.", ""},
	{MathematicalFunctions, "rint (x)", "Round x to the nearest integer.", ""},
	{MathematicalFunctions, "sin (x)", "Returns the sine of x.", ""},
	{MathematicalFunctions, "sinh (x)", "Returns the hyperbolic sine of x, which is defined mathematically as (exp(x) - exp(-x)) / 2.", ""},
	{MathematicalFunctions, "smoothstep (a, b, x)", "Returns 0 if x is less than a, returns 1 if x is greater or equal to b, returns a smooth cubic interpolation otherwise. Matches the smoothstep function in other shading languages.", ""},
	{MathematicalFunctions, "sqrt (x)", "Returns the non-negative square root of x.", ""},
	{MathematicalFunctions, "step (a, x)", "Returns 0 if x is less than a, returns 1 otherwise. Matches the step function other shading languages.", ""},
	{MathematicalFunctions, "tan (x)", "Returns the tangent of x.", ""},
	{MathematicalFunctions, "tanh (x)", "Returns the hyperbolic tangent of x, which is defined mathematically as sinh(x) / cosh(x).", ""},
	{MathematicalFunctions, "to_byte (color component)", "Converts a floating point pixel value to an 8-bit value that represents that number in sRGB space.", ""},
	{MathematicalFunctions, "to_rec709f (color component)", "Converts a floating point pixel value to an 8-bit value that represents that brightness in the rec709 standard when that standard is mapped to the 0-255 range.", ""},
	{MathematicalFunctions, "to_sRGB (color component)", "Converts a floating point pixel value to an 8-bit value that represents that number in sRGB space.", ""},
	{MathematicalFunctions, "true ()", "Always Returns 1.", ""},
	{MathematicalFunctions, "trunc (x)", "Round x to the nearest integer not larger in absolute value.", ""},
	{MathematicalFunctions, "turbulence (x, y, z, octaves, lucanarity, gain)", "This is the same as fBm() except the absolute value of the noise() function is used.", ""},
	{MathematicalFunctions, "value (frame)", "Evaluates the y value for an animation at the given frame.", ""},
	{MathematicalFunctions, "x ()", "Return the current frame number.", ""},
	{MathematicalFunctions, "y (frame)", "Evaluates the y value for an animation at the given frame.", ""},
	// waves
	{Waves, "random((frame+offset)/WaveLength)*(maxVal-minVal) + minVal", "Random wave", "random((frame)/10)"},
	{Waves, "(noise((frame+offset)/waveLength)+1)/2 * (maxVal-minVal) + minVal", "Noise wave", "(noise((frame)/10)+1)/2"},
	{Waves, "(sin(2*pi*(frame+offset)/waveLength)+1)/2 * (maxVal-minVal) + minVal", "Sine wave", "(sin(2*pi*(frame)/24)+1)/2"},
	{Waves, "(asin(sin(2*pi*(frame+offset)/waveLength))/pi+0.5) * (maxVal-minVal) + minVal", "Triangle wave", "(asin(sin(2*pi*(frame)/24))/pi+0.5)"},
	{Waves, "int(sin(2*pi*(frame+offset)/waveLength)+1) * (maxVal-minVal) + minVal", "Square wave", "int(sin(2*pi*(frame)/24)+1)"},
	{Waves, "((frame+offset) % waveLength)/waveLength * (maxVal-minVal) + minVal", "Sawtooth wave", "((frame) % 24)/24"},
	{Waves, "sin((pi*(frame+offset)/(2*waveLength)) % (pi/2)) * (maxVal-minVal) + minVal", "Sawtooth (parabolic) wave", "sin((pi*(frame)/(2*24)) % (pi/2))"},
	{Waves, "cos((pi*(frame+offset)/(2*waveLength)) % (pi/2)) * (maxVal-minVal) + minVal", "Sawtooth (parabolic reversed) wave", "cos((pi*(frame)/(2*24)) % (pi/2))"},
	{Waves, "(exp(2*pi*((frame+offset) % waveLength)/waveLength)-1)/exp(2*pi) * (maxVal-minVal) + minVal", "Sawtooth (exponential) wave", "(exp(2*pi*((frame) % 24)/24)-1)/exp(2*pi)"},
	{Waves, "abs(sin(pi*(frame + offset)/waveLength))* (maxVal-minVal) + minVal", "Bounce wave", "abs(sin(pi*(frame)/24))"},
	{Waves, "((frame+(offset+waveLength)) % (waveLength+blipLength)/(waveLength))*(waveLength/blipLength) - (waveLength/blipLength) >= 0 ? maxVal : minVal", "Blip", "((frame+20) % (20+5)/(20)) *(20/5) - (20/5) >= 0 ? 1 : 0"},
	{Waves, "((int((frame+offset) % waveLength)) >= 0 ? ((int((frame+offset) % waveLength))<= (0+(blipLength-1)) ? ((sin(pi*((frame+offset) % waveLength)/blipLength)/2+1/2) *(2*maxVal-2*minVal) + (2*minVal-maxVal)) : minVal)  : minVal)", "Sineblip", "((int(frame % 20)) >= 0 ? ((int(frame % 20)) <= (5-1) ?((sin(pi*(frame % 20)/5)/2+1/2) * (2*1-2*0) + (2*0-1)) : 0)  : 0)"},
	// conditions
	{Conditions, "value_1  ==  value_2  ?  if  :  else", "Checks if value_1 and value_2 are equal or not. If yes, returns if value, if not, returns else value", "frame == 1010 ? 50 : 100"},
	{Conditions, "value_1  !=  value_2  ?  if  :  else", "Checks if value_1 and value_2 are equal or not. If not, returns if value, if yes, returns else value", "frame != 1010 ? 50 : 100"},
	{Conditions, "value_1  >  value_2  ?  if  :  else", "Checks if value_1 is greater than value_2. If yes, returns if value, if not, returns else value", "frame > 1010 ? 50 : 100"},
	{Conditions, "value_1  <  value_2  ?  if  :  else", "Checks if value_1 is less than value_2. If yes, returns if value, if not, returns else value", "frame < 1010 ? 50 : 100"},
	{Conditions, "value_1  >=  value_2  ?  if  :  else", "Checks if value_1 is greater than or equal to value_2. If yes, returns if value, if not, returns else value", "frame >= 1010 ? 50 : 100"},
	{Conditions, "value_1  <=  value_2  ?  if  :  else", "Checks if value_1 is less than or equal to value_2. If yes, returns if value, if not, returns else value", "frame <= 1010 ? 50 : 100"},
	{Conditions, "{value_1  +  value_2  ==  value_3 } ? {return if } : {return else }", "If the sum of value_1 and value_2 equals to value_3, returns if value. If not, returns else value.", "[if {[value Blur11.size]+[value Blur12.size]==10} {return \"500\"} {return \"10\"}]"},
	{Conditions, "{value_1  -  value_2  ==  value_3 } ? {return if } : {return else }", "If value_2 substracted from value_1 equals to value_3, returns if value. If not, returns else value.", "[if {[value Blur11.size]-[value Blur12.size]==10} {return \"500\"} {return \"10\"}]"},
	{Conditions, "{value_1  *  value_2  ==  value_3 } ? {return if } : {return else }", "If value_1 multiplied by value_2 equals to value_3, returns if value. If not, returns else value.", "[if {[value Blur11.size]*[value Blur12.size]==10} {return \"500\"} {return \"10\"}]"},
	{Conditions, "{value_1  /  value_2  ==  value_3 } ? {return if } : {return else }", "If value_1 divided by value_2 equals to value_3, returns if value. If not, returns else value.", "[if {[value Blur11.size]/[value Blur12.size]==10} {return \"500\"} {return \"10\"}]"},
	{Conditions, "{value_1  %  value_2  ==  value_3 } ? {return if } : {return else }", "If the remainder of an integer division between value_2 and value_1 equals to value_3, returns if value. If not, returns else value.", "[if {[value Blur11.size]%[value Blur12.size]==10} {return \"500\"} {return \"10\"}]"},
	{Conditions, "condition_1  &&  condition_2  ?  if  :  else", "If both conditions are true, returns if value. If not, returns else value", "frame < 1010 && [value mix] == .5 ? 50 : 100"},
	{Conditions, "condition_1  ||  condition_2  ?  if  :  else", "If any of the two conditions is true, returns if value. If not, returns else value", "frame < 1010 || [value mix] == .5 ? 50 : 100"},
	// general commands
	{GeneralCommands, "[value  knob_name]", "Returns the current value of a knob", ""},
	{GeneralCommands, "frame == value", "Set the frame at the value number", ""},
	{GeneralCommands, "inrange(frame, value_1, value_2)", "Returns True (=1) when current frame is in range", ""},
	{GeneralCommands, "[exists  knob_or_node_name]", "Returns True ( =1 ) if the named knob or node exists.", ""},
	{GeneralCommands, "[knob  knob_name  new_value]", "Will set a new value for the specified knob", ""},
	{GeneralCommands, "[setkey  knob_name  frame number  new_value]", "Set a key for a knob on a specified frame with specified new value", ""},
	{GeneralCommands, "$gui", "Returns False when Nuke is running, but remains True for rendering", ""},
}
