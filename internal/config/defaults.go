package config

// defaultWhitelist is the built-in whitelist document, used when no
// --defaults override is given. Names are matched case-insensitively, so
// LICENSE and license are the same entry.
const defaultWhitelist = `files:
  - readme.md
  - readme.rst
  - readme.txt
  - license
  - license.md
  - license.txt
  - changelog.md
  - contributing.md
  - code_of_conduct.md
  - security.md
  - notice
  - authors
  - makefile
  - justfile
  - dockerfile
  - docker-compose.yml
  - docker-compose.yaml
  - package.json
  - package-lock.json
  - yarn.lock
  - pnpm-lock.yaml
  - tsconfig.json
  - jsconfig.json
  - pyproject.toml
  - setup.py
  - setup.cfg
  - requirements.txt
  - go.mod
  - go.sum
  - cargo.toml
  - cargo.lock
  - .gitignore
  - .gitattributes
  - .gitmodules
  - .editorconfig
  - .dockerignore
  - .pre-commit-config.yaml
  - .root-artifacts.yaml
  - .env.example

patterns:
  - "license-*"
  - "*.code-workspace"
`
