package renderer

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform mat3 uNormalMatrix;

out vec3 vNormal;
out vec3 vColor;

void main() {
	gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
	vNormal = normalize(uNormalMatrix * aNormal);
	vColor = aColor;
}
`

const fragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vColor;

uniform vec3 uLightDir;
uniform float uAmbient;
uniform float uDiffuse;

out vec4 FragColor;

void main() {
	float diff = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
	vec3 lit = vColor * (uAmbient + uDiffuse * diff);
	FragColor = vec4(min(lit, vec3(1.0)), 1.0);
}
`
